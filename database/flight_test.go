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

func TestCreateFlight_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	flight := model.Flight{
		FlightNumber: 102,
		DepDate:      "2026-09-01",
		DepTime:      "08:30:00",
		DepAirport:   "JFK",
		ArrDate:      "2026-09-01",
		ArrTime:      "12:45:00",
		ArrAirport:   "LAX",
		BasePrice:    "300.00",
		Status:       "ontime",
		PlaneID:      3,
		AirlineName:  "China Eastern",
	}

	mock.ExpectExec("INSERT INTO Flight").
		WithArgs(flight.FlightNumber, flight.DepDate, flight.DepTime, flight.DepAirport,
			flight.ArrDate, flight.ArrTime, flight.ArrAirport,
			flight.BasePrice, flight.Status, flight.PlaneID, flight.AirlineName).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = ds.CreateFlight(context.Background(), flight)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFlight_BadPlaneID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO Flight").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"})

	err = ds.CreateFlight(context.Background(), model.Flight{PlaneID: 999})
	require.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, apierror.ErrInvalidInput, apiErr.Code)
	assert.Equal(t, "The plane ID is invalid!", apiErr.Message)
}

func TestCreateAirport_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO Airport").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err = ds.CreateAirport(context.Background(), model.Airport{Name: "JFK", City: "New York City"})
	require.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, apierror.ErrConflict, apiErr.Code)
	assert.Equal(t, "JFK has already been used!", apiErr.Message)
}

func TestCreateAirplane_ReturnsNewID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectExec("INSERT INTO Airplane").
		WithArgs(180, "China Eastern").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := ds.CreateAirplane(context.Background(), model.Airplane{Seats: 180, AirlineName: "China Eastern"})
	assert.NoError(t, err)
	assert.Equal(t, 11, id)
}
