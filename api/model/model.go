package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func validateDateFormat(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errors.New("please format the date as 'YYYY-MM-DD' (e.g., 2026-04-22)")
	}
	return nil
}

func validateTimeFormat(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04:05", s); err != nil {
		return errors.New("please format the time as 'HH:MM:SS' (e.g., 15:28:03)")
	}
	return nil
}

func (r *RegisterCustomer) ValidateRegisterCustomer() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.PhoneNumber, validation.Required),
		validation.Field(&r.DateOfBirth, validation.By(validateDateFormat)),
		validation.Field(&r.PassportExpiration, validation.By(validateDateFormat)),
	)
}

func (r *RegisterStaff) ValidateRegisterStaff() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.DateOfBirth, validation.Required, validation.By(validateDateFormat)),
		validation.Field(&r.AirlineName, validation.Required),
	)
}

func (r *RegisterAgent) ValidateRegisterAgent() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r *LoginCustomer) ValidateLoginCustomer() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r *LoginStaff) ValidateLoginStaff() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r *LoginAgent) ValidateLoginAgent() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.BookingAgentID, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r *CreateFlight) ValidateCreateFlight() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FlightNumber, validation.Required),
		validation.Field(&r.DepDate, validation.Required, validation.By(validateDateFormat)),
		validation.Field(&r.DepTime, validation.Required, validation.By(validateTimeFormat)),
		validation.Field(&r.DepAirport, validation.Required),
		validation.Field(&r.ArrDate, validation.Required, validation.By(validateDateFormat)),
		validation.Field(&r.ArrTime, validation.Required, validation.By(validateTimeFormat)),
		validation.Field(&r.ArrAirport, validation.Required),
		validation.Field(&r.BasePrice, validation.Required),
		validation.Field(&r.Status, validation.In("", "ontime", "delayed")),
		validation.Field(&r.PlaneID, validation.Required),
	)
}

func (r *CreateAirport) ValidateCreateAirport() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.City, validation.Required),
	)
}

func (r *CreateAirplane) ValidateCreateAirplane() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Seats, validation.Required, validation.Min(1)),
	)
}

func (r *TicketPrice) ValidateTicketPrice() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FlightNumber, validation.Required),
		validation.Field(&r.DepDate, validation.Required, validation.By(validateDateFormat)),
		validation.Field(&r.DepTime, validation.Required, validation.By(validateTimeFormat)),
	)
}

func (r *PurchaseTicket) ValidatePurchaseTicket() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FlightNumber, validation.Required),
		validation.Field(&r.DepDate, validation.Required, validation.By(validateDateFormat)),
		validation.Field(&r.DepTime, validation.Required, validation.By(validateTimeFormat)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.CardType, validation.Required, validation.In("credit", "debit")),
		validation.Field(&r.CardNumber, validation.Required),
		validation.Field(&r.NameOnCard, validation.Required),
		validation.Field(&r.CardExpDate, validation.Required, validation.By(validateDateFormat)),
	)
}
