package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/model"
)

func TestGetTicketPrice_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectQuery("SELECT base_price FROM Flight").
		WithArgs(102, "2026-09-01", "08:30:00").
		WillReturnRows(sqlmock.NewRows([]string{"base_price"}).AddRow("300.00"))

	price, err := ds.GetTicketPrice(context.Background(), 102, "2026-09-01", "08:30:00")
	assert.NoError(t, err)
	assert.Equal(t, "300.00", price)
}

func TestGetTicketPrice_UnknownFlight(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectQuery("SELECT base_price FROM Flight").
		WithArgs(999, "2026-09-01", "08:30:00").
		WillReturnRows(sqlmock.NewRows([]string{"base_price"}))

	_, err = ds.GetTicketPrice(context.Background(), 999, "2026-09-01", "08:30:00")
	require.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
	assert.Equal(t, "The flight is invalid!", apiErr.Message)
}

func TestPurchaseTicket_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO Ticket").
		WillReturnResult(sqlmock.NewResult(1, 1))

	reference, err := ds.PurchaseTicket(context.Background(), model.Ticket{
		Email:        "alice@example.com",
		CardType:     "credit",
		CardNumber:   "4111111111111111",
		NameOnCard:   "Alice",
		CardExpDate:  "2027-01-01",
		FlightNumber: 102,
		DepDate:      "2026-09-01",
		DepTime:      "08:30:00",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, reference)
}

func TestPurchaseTicket_UnknownFlight(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO Ticket").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = ds.PurchaseTicket(context.Background(), model.Ticket{FlightNumber: 999})
	require.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
}
