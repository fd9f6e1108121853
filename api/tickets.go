package api

import (
	"github.com/gin-gonic/gin"

	"github.com/PIG208/Airbook/api/middleware"
	model2 "github.com/PIG208/Airbook/api/model"
)

// TicketPrice quotes the base price of a flight. The quote is public;
// buying needs a session.
func (a Api) TicketPrice(c *gin.Context) {
	var req model2.TicketPrice
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.ValidateTicketPrice(); err != nil {
		badRequest(c, err)
		return
	}
	price, err := a.airbook.TicketPrice(c.Request.Context(), req.FlightNumber, req.DepDate, req.DepTime)
	if err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, gin.H{"base_price": price})
}

// TicketPurchase buys a seat for the session's identity and returns the
// booking reference.
func (a Api) TicketPurchase(c *gin.Context) {
	var req model2.PurchaseTicket
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.ValidatePurchaseTicket(); err != nil {
		badRequest(c, err)
		return
	}
	reference, err := a.airbook.PurchaseTicket(c.Request.Context(),
		middleware.SessionFromContext(c), req.ToTicket())
	if err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, gin.H{"reference": reference})
}
