package airbook

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/internal/auth"
	"github.com/PIG208/Airbook/model"
)

// TicketPrice returns the base price of the identified flight.
func (a Airbook) TicketPrice(ctx context.Context, flightNumber int, depDate, depTime string) (string, error) {
	return a.datasource.GetTicketPrice(ctx, flightNumber, depDate, depTime)
}

// PurchaseTicket books a seat on the identified flight for the session's
// identity. A customer buys for themselves; an agent buys on behalf of
// the customer email in the ticket and is recorded on it.
func (a Airbook) PurchaseTicket(ctx context.Context, session *auth.Session, ticket model.Ticket) (string, error) {
	switch {
	case session == nil:
		return "", apierror.NewAPIError(apierror.ErrUnauthorized,
			"Looks like you are trying to access something that requires login.", nil)
	case session.Role == auth.RoleCustomer:
		ticket.Email = session.Email
		ticket.BookingAgentID = nil
	case session.Role == auth.RoleAgent:
		if ticket.Email == "" {
			return "", apierror.NewAPIError(apierror.ErrBadRequest,
				"Missing required key \"email\"!", nil)
		}
		agentID := session.AgentID
		ticket.BookingAgentID = &agentID
	default:
		return "", apierror.NewAPIError(apierror.ErrPermissionDenied,
			"You don't have the permission to purchase tickets!", nil)
	}

	reference, err := a.datasource.PurchaseTicket(ctx, ticket)
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"reference":     reference,
		"flight_number": ticket.FlightNumber,
		"email":         ticket.Email,
	}).Info("ticket purchased")
	return reference, nil
}
