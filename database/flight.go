package database

import (
	"context"

	"github.com/pkg/errors"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/model"
)

func (d Datasource) CreateFlight(ctx context.Context, flight model.Flight) error {
	_, err := d.Conn.ExecContext(ctx, `
		INSERT INTO Flight (flight_number, dep_date, dep_time, dep_airport,
			arr_date, arr_time, arr_airport, base_price, status, plane_id, airline_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		flight.FlightNumber, flight.DepDate, flight.DepTime, flight.DepAirport,
		flight.ArrDate, flight.ArrTime, flight.ArrAirport,
		flight.BasePrice, flight.Status, flight.PlaneID, flight.AirlineName,
	)
	if IsDuplicateEntry(err) {
		return apierror.NewAPIError(apierror.ErrConflict, "The flight has already been created!", err)
	}
	if IsForeignKeyViolation(err) {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "The plane ID is invalid!", err)
	}
	return errors.Wrap(err, "creating flight")
}

func (d Datasource) CreateAirport(ctx context.Context, airport model.Airport) error {
	_, err := d.Conn.ExecContext(ctx,
		`INSERT INTO Airport (airport_name, airport_city) VALUES (?, ?)`,
		airport.Name, airport.City,
	)
	if IsDuplicateEntry(err) {
		return apierror.NewAPIError(apierror.ErrConflict, airport.Name+" has already been used!", err)
	}
	return errors.Wrap(err, "creating airport")
}

func (d Datasource) CreateAirplane(ctx context.Context, airplane model.Airplane) (int, error) {
	result, err := d.Conn.ExecContext(ctx,
		`INSERT INTO Airplane (seats, airline_name) VALUES (?, ?)`,
		airplane.Seats, airplane.AirlineName,
	)
	if IsForeignKeyViolation(err) {
		return 0, apierror.NewAPIError(apierror.ErrInvalidInput, "The airline name is invalid!", err)
	}
	if err != nil {
		return 0, errors.Wrap(err, "creating airplane")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "reading new plane id")
	}
	return int(id), nil
}
