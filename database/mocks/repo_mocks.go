package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PIG208/Airbook/database"
	"github.com/PIG208/Airbook/model"
)

// MockDataSource is a mock implementation of the IDataSource interface
type MockDataSource struct {
	mock.Mock
}

// Search methods

func (m *MockDataSource) RunQuery(ctx context.Context, sqlText string, args []interface{}, mode database.FetchMode, size int) ([]database.Row, error) {
	called := m.Called(ctx, sqlText, args, mode, size)
	rows, _ := called.Get(0).([]database.Row)
	return rows, called.Error(1)
}

// Account methods

func (m *MockDataSource) CreateCustomer(ctx context.Context, customer model.Customer) error {
	called := m.Called(ctx, customer)
	return called.Error(0)
}

func (m *MockDataSource) CreateStaff(ctx context.Context, staff model.AirlineStaff) error {
	called := m.Called(ctx, staff)
	return called.Error(0)
}

func (m *MockDataSource) CreateAgent(ctx context.Context, agent model.BookingAgent) (int, error) {
	called := m.Called(ctx, agent)
	return called.Int(0), called.Error(1)
}

func (m *MockDataSource) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	called := m.Called(ctx, email)
	customer, _ := called.Get(0).(*model.Customer)
	return customer, called.Error(1)
}

func (m *MockDataSource) GetStaffByUsername(ctx context.Context, username string) (*model.AirlineStaff, error) {
	called := m.Called(ctx, username)
	staff, _ := called.Get(0).(*model.AirlineStaff)
	return staff, called.Error(1)
}

func (m *MockDataSource) GetAgent(ctx context.Context, email string, id int) (*model.BookingAgent, error) {
	called := m.Called(ctx, email, id)
	agent, _ := called.Get(0).(*model.BookingAgent)
	return agent, called.Error(1)
}

func (m *MockDataSource) GetStaffAirline(ctx context.Context, username string) (string, error) {
	called := m.Called(ctx, username)
	return called.String(0), called.Error(1)
}

// Flight methods

func (m *MockDataSource) CreateFlight(ctx context.Context, flight model.Flight) error {
	called := m.Called(ctx, flight)
	return called.Error(0)
}

func (m *MockDataSource) CreateAirport(ctx context.Context, airport model.Airport) error {
	called := m.Called(ctx, airport)
	return called.Error(0)
}

func (m *MockDataSource) CreateAirplane(ctx context.Context, airplane model.Airplane) (int, error) {
	called := m.Called(ctx, airplane)
	return called.Int(0), called.Error(1)
}

// Ticket methods

func (m *MockDataSource) GetTicketPrice(ctx context.Context, flightNumber int, depDate, depTime string) (string, error) {
	called := m.Called(ctx, flightNumber, depDate, depTime)
	return called.String(0), called.Error(1)
}

func (m *MockDataSource) PurchaseTicket(ctx context.Context, ticket model.Ticket) (string, error) {
	called := m.Called(ctx, ticket)
	return called.String(0), called.Error(1)
}
