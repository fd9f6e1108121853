package airbook

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/model"
)

// CreateFlight validates the schedule and stores the new flight. Only
// airline staff reach this; the handler has already forced AirlineName
// to the staff member's own airline.
func (a Airbook) CreateFlight(ctx context.Context, flight model.Flight) error {
	dep, err := time.Parse("2006-01-02 15:04:05", flight.DepDate+" "+flight.DepTime)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "The departure date or time is invalid!", err)
	}
	arr, err := time.Parse("2006-01-02 15:04:05", flight.ArrDate+" "+flight.ArrTime)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "The arrival date or time is invalid!", err)
	}
	if !arr.After(dep) {
		return apierror.NewAPIError(apierror.ErrInvalidInput,
			"The flight must arrive after its departure!", nil)
	}
	if flight.Status == "" {
		flight.Status = "ontime"
	}
	if err := a.datasource.CreateFlight(ctx, flight); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"flight_number": flight.FlightNumber,
		"dep_date":      flight.DepDate,
		"airline":       flight.AirlineName,
	}).Info("flight created")
	return nil
}

// CreateAirport stores a new airport.
func (a Airbook) CreateAirport(ctx context.Context, airport model.Airport) error {
	return a.datasource.CreateAirport(ctx, airport)
}

// CreateAirplane stores a new airplane for the staff member's airline and
// returns its generated id.
func (a Airbook) CreateAirplane(ctx context.Context, airplane model.Airplane) (int, error) {
	if airplane.Seats <= 0 {
		return 0, apierror.NewAPIError(apierror.ErrInvalidInput,
			"The airplane must have at least one seat!", nil)
	}
	return a.datasource.CreateAirplane(ctx, airplane)
}

// StaffAirline resolves the airline the staff member works for, used by
// handlers to scope staff operations.
func (a Airbook) StaffAirline(ctx context.Context, username string) (string, error) {
	return a.datasource.GetStaffAirline(ctx, username)
}
