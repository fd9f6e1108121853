package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/model"
)

// GetTicketPrice looks up the base price of the identified flight.
func (d Datasource) GetTicketPrice(ctx context.Context, flightNumber int, depDate, depTime string) (string, error) {
	var price string
	err := d.Conn.QueryRowContext(ctx, `
		SELECT base_price FROM Flight
		WHERE (flight_number, dep_date, dep_time) = (?, ?, ?)`,
		flightNumber, depDate, depTime).Scan(&price)
	if err == sql.ErrNoRows {
		return "", apierror.NewAPIError(apierror.ErrNotFound, "The flight is invalid!", err)
	}
	if err != nil {
		return "", errors.Wrap(err, "fetching ticket price")
	}
	return price, nil
}

// PurchaseTicket inserts a ticket for the flight, generating the booking
// reference. The price is re-read from the flight so a tampered client
// price never lands in the ledger.
func (d Datasource) PurchaseTicket(ctx context.Context, ticket model.Ticket) (string, error) {
	reference := uuid.New().String()
	result, err := d.Conn.ExecContext(ctx, `
		INSERT INTO Ticket (reference, email, actual_price, card_type, card_number,
			name_on_card, exp_date, purchase_date, purchase_time,
			flight_number, dep_date, dep_time, airline_name, booking_agent_id)
		SELECT ?, ?, base_price, ?, ?, ?, ?, CURDATE(), CURTIME(),
			flight_number, dep_date, dep_time, airline_name, ?
		FROM Flight WHERE (flight_number, dep_date, dep_time) = (?, ?, ?)`,
		reference, ticket.Email, ticket.CardType, ticket.CardNumber,
		ticket.NameOnCard, ticket.CardExpDate, ticket.BookingAgentID,
		ticket.FlightNumber, ticket.DepDate, ticket.DepTime,
	)
	if IsForeignKeyViolation(err) {
		return "", apierror.NewAPIError(apierror.ErrInvalidInput, "The flight is invalid!", err)
	}
	if err != nil {
		return "", errors.Wrap(err, "purchasing ticket")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return "", apierror.NewAPIError(apierror.ErrNotFound, "The flight is invalid!", nil)
	}
	return reference, nil
}
