package database

import (
	"context"

	"github.com/PIG208/Airbook/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	search  // Interface for filter query execution
	account // Interface for account-related operations
	flight  // Interface for flight-related operations
	ticket  // Interface for ticket-related operations
}

// search defines the single entry point for running built filter queries.
type search interface {
	RunQuery(ctx context.Context, sqlText string, args []interface{}, mode FetchMode, size int) ([]Row, error) // Executes a finished (sql, params) pair
}

// account defines methods for handling accounts.
type account interface {
	CreateCustomer(ctx context.Context, customer model.Customer) error                    // Creates a new customer account
	CreateStaff(ctx context.Context, staff model.AirlineStaff) error                      // Creates a new airline staff account
	CreateAgent(ctx context.Context, agent model.BookingAgent) (int, error)               // Creates a new booking agent account
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)        // Retrieves a customer by email
	GetStaffByUsername(ctx context.Context, username string) (*model.AirlineStaff, error) // Retrieves a staff member by username
	GetAgent(ctx context.Context, email string, id int) (*model.BookingAgent, error)      // Retrieves a booking agent by email and id
	GetStaffAirline(ctx context.Context, username string) (string, error)                 // Resolves the airline a staff member works for
}

// flight defines methods for handling flights and their supporting entities.
type flight interface {
	CreateFlight(ctx context.Context, flight model.Flight) error              // Creates a new flight
	CreateAirport(ctx context.Context, airport model.Airport) error           // Creates a new airport
	CreateAirplane(ctx context.Context, airplane model.Airplane) (int, error) // Creates a new airplane
}

// ticket defines methods for handling ticket pricing and purchase.
type ticket interface {
	GetTicketPrice(ctx context.Context, flightNumber int, depDate, depTime string) (string, error) // Looks up the base price of a flight
	PurchaseTicket(ctx context.Context, ticket model.Ticket) (string, error)                       // Purchases a ticket, returning the booking reference
}
