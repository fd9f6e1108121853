package model

// Flight is one scheduled flight. Dates and times are stored as separate
// columns in their ISO text forms, which is what makes the combined
// date/time window filtering non-trivial.
type Flight struct {
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
	AirlineName  string `json:"airline_name"`
}

type Airport struct {
	Name string `json:"airport_name"`
	City string `json:"airport_city"`
}

type Airplane struct {
	ID          int    `json:"plane_id"`
	Seats       int    `json:"seats"`
	AirlineName string `json:"airline_name"`
}
