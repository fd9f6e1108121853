package model

import (
	"github.com/PIG208/Airbook/model"
)

// CreateFlight is the request body for POST /create_flight. The airline
// is never taken from the body; the handler fills it in from the staff
// session.
type CreateFlight struct {
	FlightNumber int    `json:"flight_number"`
	DepDate      string `json:"dep_date"`
	DepTime      string `json:"dep_time"`
	DepAirport   string `json:"dep_airport"`
	ArrDate      string `json:"arr_date"`
	ArrTime      string `json:"arr_time"`
	ArrAirport   string `json:"arr_airport"`
	BasePrice    string `json:"base_price"`
	Status       string `json:"status"`
	PlaneID      int    `json:"plane_id"`
}

func (r *CreateFlight) ToFlight(airlineName string) model.Flight {
	return model.Flight{
		FlightNumber: r.FlightNumber,
		DepDate:      r.DepDate,
		DepTime:      r.DepTime,
		DepAirport:   r.DepAirport,
		ArrDate:      r.ArrDate,
		ArrTime:      r.ArrTime,
		ArrAirport:   r.ArrAirport,
		BasePrice:    r.BasePrice,
		Status:       r.Status,
		PlaneID:      r.PlaneID,
		AirlineName:  airlineName,
	}
}

// CreateAirport is the request body for POST /create_airport.
type CreateAirport struct {
	Name string `json:"airport_name"`
	City string `json:"airport_city"`
}

func (r *CreateAirport) ToAirport() model.Airport {
	return model.Airport{Name: r.Name, City: r.City}
}

// CreateAirplane is the request body for POST /create_airplane. Like
// flights, the airplane always belongs to the staff member's airline.
type CreateAirplane struct {
	Seats int `json:"seats"`
}

func (r *CreateAirplane) ToAirplane(airlineName string) model.Airplane {
	return model.Airplane{Seats: r.Seats, AirlineName: airlineName}
}
