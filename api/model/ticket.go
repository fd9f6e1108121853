package model

import (
	"github.com/PIG208/Airbook/model"
)

// TicketPrice is the request body for POST /ticket_price.
type TicketPrice struct {
	FlightNumber int    `json:"flight_number"`
	DepDate      string `json:"dep_date"`
	DepTime      string `json:"dep_time"`
}

// PurchaseTicket is the request body for POST /ticket_purchase. Email is
// only honored for booking agents, who buy on behalf of a customer.
type PurchaseTicket struct {
	FlightNumber int    `json:"flight_number"`
	DepDate      string `json:"dep_date"`
	DepTime      string `json:"dep_time"`
	Email        string `json:"email"`
	CardType     string `json:"card_type"`
	CardNumber   string `json:"card_number"`
	NameOnCard   string `json:"name_on_card"`
	CardExpDate  string `json:"exp_date"`
}

func (r *PurchaseTicket) ToTicket() model.Ticket {
	return model.Ticket{
		FlightNumber: r.FlightNumber,
		DepDate:      r.DepDate,
		DepTime:      r.DepTime,
		Email:        r.Email,
		CardType:     r.CardType,
		CardNumber:   r.CardNumber,
		NameOnCard:   r.NameOnCard,
		CardExpDate:  r.CardExpDate,
	}
}
