package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/model"
)

func TestCreateCustomer_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	customer := model.Customer{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "hash",
		Salt:     "salt",
	}

	mock.ExpectExec("INSERT INTO Customer").
		WithArgs(customer.Email, customer.Name, customer.Password, customer.Salt,
			"", "", "", "", "", "", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = ds.CreateCustomer(context.Background(), customer)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO Customer").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err = ds.CreateCustomer(context.Background(), model.Customer{Email: "alice@example.com"})
	require.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, apierror.ErrConflict, apiErr.Code)
	assert.Equal(t, "alice@example.com has already been used!", apiErr.Message)
}

func TestCreateStaff_UnknownAirline(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO AirlineStaff").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"})

	err = ds.CreateStaff(context.Background(), model.AirlineStaff{Username: "bob", AirlineName: "Nope Air"})
	require.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, apierror.ErrInvalidInput, apiErr.Code)
}

func TestCreateAgent_ReturnsNewID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO BookingAgent").
		WithArgs("agent@example.com", "hash", "salt").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := ds.CreateAgent(context.Background(), model.BookingAgent{
		Email:    "agent@example.com",
		Password: "hash",
		Salt:     "salt",
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestGetCustomerByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectQuery("SELECT email, name, password, salt").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email"}))

	customer, err := ds.GetCustomerByEmail(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestGetStaffByUsername_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	rows := sqlmock.NewRows([]string{"username", "password", "salt", "first_name", "last_name", "date_of_birth", "airline_name"}).
		AddRow("bob", "hash", "salt", "Bob", "Smith", "1990-01-01", "China Eastern")

	mock.ExpectQuery("SELECT username, password, salt").
		WithArgs("bob").
		WillReturnRows(rows)

	staff, err := ds.GetStaffByUsername(context.Background(), "bob")
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, "China Eastern", staff.AirlineName)
}

func TestGetAgent_MatchesEmailAndID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	rows := sqlmock.NewRows([]string{"booking_agent_id", "email", "password", "salt"}).
		AddRow(7, "agent@example.com", "hash", "salt")

	mock.ExpectQuery("SELECT booking_agent_id, email, password, salt").
		WithArgs("agent@example.com", 7).
		WillReturnRows(rows)

	agent, err := ds.GetAgent(context.Background(), "agent@example.com", 7)
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, 7, agent.ID)
}

func TestGetStaffAirline(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectQuery("SELECT airline_name FROM AirlineStaff").
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"airline_name"}).AddRow("China Eastern"))

	airline, err := ds.GetStaffAirline(context.Background(), "bob")
	assert.NoError(t, err)
	assert.Equal(t, "China Eastern", airline)
}
