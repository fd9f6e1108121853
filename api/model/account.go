package model

import (
	"github.com/PIG208/Airbook/model"
)

// RegisterCustomer is the request body for POST /register/cust.
type RegisterCustomer struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	Password           string `json:"password"`
	PhoneNumber        string `json:"phone_number"`
	DateOfBirth        string `json:"date_of_birth"`
	PassportNumber     string `json:"passport_number"`
	PassportExpiration string `json:"passport_expiration"`
	PassportCountry    string `json:"passport_country"`
	BuildingNumber     string `json:"building_number"`
	Street             string `json:"street"`
	City               string `json:"city"`
	State              string `json:"state"`
}

func (r *RegisterCustomer) ToCustomer() model.Customer {
	country := r.PassportCountry
	if country == "" {
		country = "China"
	}
	return model.Customer{
		Email:              r.Email,
		Name:               r.Name,
		PhoneNumber:        r.PhoneNumber,
		DateOfBirth:        r.DateOfBirth,
		PassportNumber:     r.PassportNumber,
		PassportExpiration: r.PassportExpiration,
		PassportCountry:    country,
		BuildingNumber:     r.BuildingNumber,
		Street:             r.Street,
		City:               r.City,
		State:              r.State,
	}
}

// RegisterStaff is the request body for POST /register/staff.
type RegisterStaff struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	AirlineName string `json:"airline_name"`
}

func (r *RegisterStaff) ToStaff() model.AirlineStaff {
	return model.AirlineStaff{
		Username:    r.Username,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		AirlineName: r.AirlineName,
	}
}

// RegisterAgent is the request body for POST /register/agent.
type RegisterAgent struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterAgent) ToAgent() model.BookingAgent {
	return model.BookingAgent{Email: r.Email}
}

// LoginCustomer is the request body for POST /login/cust.
type LoginCustomer struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginStaff is the request body for POST /login/staff.
type LoginStaff struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginAgent is the request body for POST /login/agent. Agents log in
// with both their email and their assigned id.
type LoginAgent struct {
	Email          string `json:"email"`
	BookingAgentID int    `json:"booking_agent_id"`
	Password       string `json:"password"`
}
