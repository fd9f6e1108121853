package model

// Ticket records a purchase of one seat on one flight. BookingAgentID is
// nil for purchases the customer made directly.
type Ticket struct {
	ID             int    `json:"ticket_id"`
	Reference      string `json:"reference"`
	Email          string `json:"email"`
	ActualPrice    string `json:"actual_price"`
	CardType       string `json:"card_type"`
	CardNumber     string `json:"card_number"`
	NameOnCard     string `json:"name_on_card"`
	CardExpDate    string `json:"exp_date"`
	PurchaseDate   string `json:"purchase_date"`
	PurchaseTime   string `json:"purchase_time"`
	FlightNumber   int    `json:"flight_number"`
	DepDate        string `json:"dep_date"`
	DepTime        string `json:"dep_time"`
	AirlineName    string `json:"airline_name"`
	BookingAgentID *int   `json:"booking_agent_id,omitempty"`
}

// Feedback is a customer comment on a flown flight.
type Feedback struct {
	Email        string `json:"email"`
	FlightNumber int    `json:"flight_number"`
	DepDate      string `json:"dep_date"`
	DepTime      string `json:"dep_time"`
	Rate         int    `json:"rate"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"created_at"`
}
