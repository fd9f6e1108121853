package airbook

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/internal/auth"
	"github.com/PIG208/Airbook/model"
)

const loginMismatchMessage = "The input information or the password does not match!"
const loginUnknownUserMessage = "The input information doesn't match any existing users!"

// RegisterCustomer hashes the password and stores the new customer
// account.
func (a Airbook) RegisterCustomer(ctx context.Context, customer model.Customer, password string) error {
	hashed, salt, err := auth.GenerateHash(password)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "The account could not be created.", err)
	}
	customer.Password = hashed
	customer.Salt = salt
	if err := a.datasource.CreateCustomer(ctx, customer); err != nil {
		return err
	}
	logrus.WithField("email", customer.Email).Info("customer registered")
	return nil
}

// RegisterStaff hashes the password and stores the new airline staff
// account.
func (a Airbook) RegisterStaff(ctx context.Context, staff model.AirlineStaff, password string) error {
	hashed, salt, err := auth.GenerateHash(password)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "The account could not be created.", err)
	}
	staff.Password = hashed
	staff.Salt = salt
	if err := a.datasource.CreateStaff(ctx, staff); err != nil {
		return err
	}
	logrus.WithField("username", staff.Username).Info("staff registered")
	return nil
}

// RegisterAgent hashes the password and stores the new booking agent
// account, returning the generated agent id the agent logs in with.
func (a Airbook) RegisterAgent(ctx context.Context, agent model.BookingAgent, password string) (int, error) {
	hashed, salt, err := auth.GenerateHash(password)
	if err != nil {
		return 0, apierror.NewAPIError(apierror.ErrInternalServer, "The account could not be created.", err)
	}
	agent.Password = hashed
	agent.Salt = salt
	id, err := a.datasource.CreateAgent(ctx, agent)
	if err != nil {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{"email": agent.Email, "agent_id": id}).Info("agent registered")
	return id, nil
}

// LoginCustomer checks the credentials and returns the established
// session.
func (a Airbook) LoginCustomer(ctx context.Context, email, password string) (*auth.Session, error) {
	customer, err := a.datasource.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "The login could not be completed.", err)
	}
	if customer == nil {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, loginUnknownUserMessage, nil)
	}
	if !auth.CheckHash(password, customer.Password, customer.Salt) {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, loginMismatchMessage, nil)
	}
	return &auth.Session{Role: auth.RoleCustomer, Email: customer.Email}, nil
}

// LoginStaff checks the credentials and returns the established session.
func (a Airbook) LoginStaff(ctx context.Context, username, password string) (*auth.Session, error) {
	staff, err := a.datasource.GetStaffByUsername(ctx, username)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "The login could not be completed.", err)
	}
	if staff == nil {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, loginUnknownUserMessage, nil)
	}
	if !auth.CheckHash(password, staff.Password, staff.Salt) {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, loginMismatchMessage, nil)
	}
	return &auth.Session{Role: auth.RoleStaff, Username: staff.Username}, nil
}

// LoginAgent checks the credentials and returns the established session.
// Agents log in with the (email, agent id) pair.
func (a Airbook) LoginAgent(ctx context.Context, email string, agentID int, password string) (*auth.Session, error) {
	agent, err := a.datasource.GetAgent(ctx, email, agentID)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "The login could not be completed.", err)
	}
	if agent == nil {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, loginUnknownUserMessage, nil)
	}
	if !auth.CheckHash(password, agent.Password, agent.Salt) {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, loginMismatchMessage, nil)
	}
	return &auth.Session{Role: auth.RoleAgent, AgentEmail: agent.Email, AgentID: agent.ID}, nil
}
