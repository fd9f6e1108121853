package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/model"
)

func (d Datasource) CreateCustomer(ctx context.Context, customer model.Customer) error {
	_, err := d.Conn.ExecContext(ctx, `
		INSERT INTO Customer (email, name, password, salt, phone_number, date_of_birth,
			passport_number, passport_expiration, passport_country, building_number, street, city, state)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, NULLIF(?, ''), ?, ?, ?, ?, ?)`,
		customer.Email, customer.Name, customer.Password, customer.Salt,
		customer.PhoneNumber, customer.DateOfBirth, customer.PassportNumber,
		customer.PassportExpiration, customer.PassportCountry,
		customer.BuildingNumber, customer.Street, customer.City, customer.State,
	)
	if IsDuplicateEntry(err) {
		return apierror.NewAPIError(apierror.ErrConflict, customer.Email+" has already been used!", err)
	}
	return errors.Wrap(err, "creating customer")
}

func (d Datasource) CreateStaff(ctx context.Context, staff model.AirlineStaff) error {
	_, err := d.Conn.ExecContext(ctx, `
		INSERT INTO AirlineStaff (username, password, salt, first_name, last_name, date_of_birth, airline_name)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?)`,
		staff.Username, staff.Password, staff.Salt,
		staff.FirstName, staff.LastName, staff.DateOfBirth, staff.AirlineName,
	)
	if IsDuplicateEntry(err) {
		return apierror.NewAPIError(apierror.ErrConflict, staff.Username+" has already been used!", err)
	}
	if IsForeignKeyViolation(err) {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "The airline name is invalid!", err)
	}
	return errors.Wrap(err, "creating airline staff")
}

func (d Datasource) CreateAgent(ctx context.Context, agent model.BookingAgent) (int, error) {
	result, err := d.Conn.ExecContext(ctx, `
		INSERT INTO BookingAgent (email, password, salt) VALUES (?, ?, ?)`,
		agent.Email, agent.Password, agent.Salt,
	)
	if IsDuplicateEntry(err) {
		return 0, apierror.NewAPIError(apierror.ErrConflict, agent.Email+" has already been used!", err)
	}
	if err != nil {
		return 0, errors.Wrap(err, "creating booking agent")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "reading new agent id")
	}
	return int(id), nil
}

func (d Datasource) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer
	err := d.Conn.QueryRowContext(ctx, `
		SELECT email, name, password, salt, IFNULL(phone_number, ''), IFNULL(date_of_birth, ''),
			IFNULL(passport_number, ''), IFNULL(passport_expiration, ''), IFNULL(passport_country, ''),
			IFNULL(building_number, ''), IFNULL(street, ''), IFNULL(city, ''), IFNULL(state, '')
		FROM Customer WHERE email = ?`, email).Scan(
		&c.Email, &c.Name, &c.Password, &c.Salt, &c.PhoneNumber, &c.DateOfBirth,
		&c.PassportNumber, &c.PassportExpiration, &c.PassportCountry,
		&c.BuildingNumber, &c.Street, &c.City, &c.State,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching customer")
	}
	return &c, nil
}

func (d Datasource) GetStaffByUsername(ctx context.Context, username string) (*model.AirlineStaff, error) {
	var s model.AirlineStaff
	err := d.Conn.QueryRowContext(ctx, `
		SELECT username, password, salt, first_name, last_name, IFNULL(date_of_birth, ''), airline_name
		FROM AirlineStaff WHERE username = ?`, username).Scan(
		&s.Username, &s.Password, &s.Salt, &s.FirstName, &s.LastName, &s.DateOfBirth, &s.AirlineName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching airline staff")
	}
	return &s, nil
}

func (d Datasource) GetAgent(ctx context.Context, email string, id int) (*model.BookingAgent, error) {
	var a model.BookingAgent
	err := d.Conn.QueryRowContext(ctx, `
		SELECT booking_agent_id, email, password, salt
		FROM BookingAgent WHERE (email, booking_agent_id) = (?, ?)`, email, id).Scan(
		&a.ID, &a.Email, &a.Password, &a.Salt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching booking agent")
	}
	return &a, nil
}

// GetStaffAirline resolves the airline a staff member works for; the
// orchestrator forces it into staff-issued search criteria.
func (d Datasource) GetStaffAirline(ctx context.Context, username string) (string, error) {
	var airline string
	err := d.Conn.QueryRowContext(ctx,
		`SELECT airline_name FROM AirlineStaff WHERE username = ?`, username).Scan(&airline)
	if err == sql.ErrNoRows {
		return "", apierror.NewAPIError(apierror.ErrNotFound, "The staff account does not exist!", err)
	}
	if err != nil {
		return "", errors.Wrap(err, "resolving staff airline")
	}
	return airline, nil
}
