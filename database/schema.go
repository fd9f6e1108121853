package database

import (
	"database/sql"

	"github.com/pkg/errors"
)

// bootstrapSchema creates the tables and views the application expects.
// Statements are idempotent so startup against an existing database is a
// no-op.
func bootstrapSchema(db *sql.DB) error {
	statements := []string{
		createAirlineTable,
		createAirportTable,
		createAirplaneTable,
		createCustomerTable,
		createStaffTable,
		createAgentTable,
		createFlightTable,
		createTicketTable,
		createFeedbackTable,
		createFutureFlightsView,
		createVerboseFlightsView,
		createSpendingsView,
		createTicketDetailsView,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "bootstrapping schema")
		}
	}
	return nil
}

const createAirlineTable = `
CREATE TABLE IF NOT EXISTS Airline (
	airline_name VARCHAR(64) PRIMARY KEY
)`

const createAirportTable = `
CREATE TABLE IF NOT EXISTS Airport (
	airport_name VARCHAR(64) PRIMARY KEY,
	airport_city VARCHAR(64) NOT NULL
)`

const createAirplaneTable = `
CREATE TABLE IF NOT EXISTS Airplane (
	plane_id INT AUTO_INCREMENT PRIMARY KEY,
	seats INT NOT NULL,
	airline_name VARCHAR(64) NOT NULL,
	FOREIGN KEY (airline_name) REFERENCES Airline (airline_name)
)`

const createCustomerTable = `
CREATE TABLE IF NOT EXISTS Customer (
	email VARCHAR(128) PRIMARY KEY,
	name VARCHAR(128) NOT NULL,
	password CHAR(60) NOT NULL,
	salt CHAR(32) NOT NULL,
	phone_number VARCHAR(32),
	date_of_birth DATE,
	passport_number VARCHAR(32),
	passport_expiration DATE,
	passport_country VARCHAR(64),
	building_number VARCHAR(16),
	street VARCHAR(128),
	city VARCHAR(64),
	state VARCHAR(64)
)`

const createStaffTable = `
CREATE TABLE IF NOT EXISTS AirlineStaff (
	username VARCHAR(64) PRIMARY KEY,
	password CHAR(60) NOT NULL,
	salt CHAR(32) NOT NULL,
	first_name VARCHAR(64) NOT NULL,
	last_name VARCHAR(64) NOT NULL,
	date_of_birth DATE,
	airline_name VARCHAR(64) NOT NULL,
	FOREIGN KEY (airline_name) REFERENCES Airline (airline_name)
)`

const createAgentTable = `
CREATE TABLE IF NOT EXISTS BookingAgent (
	booking_agent_id INT AUTO_INCREMENT PRIMARY KEY,
	email VARCHAR(128) NOT NULL UNIQUE,
	password CHAR(60) NOT NULL,
	salt CHAR(32) NOT NULL
)`

const createFlightTable = `
CREATE TABLE IF NOT EXISTS Flight (
	flight_number INT NOT NULL,
	dep_date DATE NOT NULL,
	dep_time TIME NOT NULL,
	dep_airport VARCHAR(64) NOT NULL,
	arr_date DATE NOT NULL,
	arr_time TIME NOT NULL,
	arr_airport VARCHAR(64) NOT NULL,
	base_price DECIMAL(10, 2) NOT NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'ontime',
	plane_id INT NOT NULL,
	airline_name VARCHAR(64) NOT NULL,
	PRIMARY KEY (flight_number, dep_date, dep_time),
	FOREIGN KEY (dep_airport) REFERENCES Airport (airport_name),
	FOREIGN KEY (arr_airport) REFERENCES Airport (airport_name),
	FOREIGN KEY (plane_id) REFERENCES Airplane (plane_id),
	FOREIGN KEY (airline_name) REFERENCES Airline (airline_name)
)`

const createTicketTable = `
CREATE TABLE IF NOT EXISTS Ticket (
	ticket_id INT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(64) NOT NULL UNIQUE,
	email VARCHAR(128) NOT NULL,
	actual_price DECIMAL(10, 2) NOT NULL,
	card_type VARCHAR(16) NOT NULL,
	card_number VARCHAR(32) NOT NULL,
	name_on_card VARCHAR(128) NOT NULL,
	exp_date DATE NOT NULL,
	purchase_date DATE NOT NULL,
	purchase_time TIME NOT NULL,
	flight_number INT NOT NULL,
	dep_date DATE NOT NULL,
	dep_time TIME NOT NULL,
	airline_name VARCHAR(64) NOT NULL,
	booking_agent_id INT,
	FOREIGN KEY (email) REFERENCES Customer (email),
	FOREIGN KEY (flight_number, dep_date, dep_time) REFERENCES Flight (flight_number, dep_date, dep_time),
	FOREIGN KEY (booking_agent_id) REFERENCES BookingAgent (booking_agent_id)
)`

const createFeedbackTable = `
CREATE TABLE IF NOT EXISTS Feedback (
	email VARCHAR(128) NOT NULL,
	flight_number INT NOT NULL,
	dep_date DATE NOT NULL,
	dep_time TIME NOT NULL,
	rate INT,
	comment TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (email, flight_number, dep_date, dep_time),
	FOREIGN KEY (email) REFERENCES Customer (email),
	FOREIGN KEY (flight_number, dep_date, dep_time) REFERENCES Flight (flight_number, dep_date, dep_time)
)`

const createFutureFlightsView = `
CREATE OR REPLACE VIEW future_flights AS
SELECT * FROM Flight
WHERE dep_date > CURDATE() OR (dep_date = CURDATE() AND dep_time > CURTIME())`

const createVerboseFlightsView = `
CREATE OR REPLACE VIEW verbose_flights AS
SELECT Flight.*, dep.airport_city AS dep_city, arr.airport_city AS arr_city
FROM Flight
JOIN Airport dep ON (Flight.dep_airport = dep.airport_name)
JOIN Airport arr ON (Flight.arr_airport = arr.airport_name)`

const createSpendingsView = `
CREATE OR REPLACE VIEW spendings AS
SELECT email, booking_agent_id, airline_name, purchase_date, purchase_time, actual_price
FROM Ticket`

const createTicketDetailsView = `
CREATE OR REPLACE VIEW ticket_details AS
SELECT Ticket.*, Flight.dep_airport, Flight.arr_date, Flight.arr_time, Flight.arr_airport, Flight.status
FROM Ticket
JOIN Flight ON (Ticket.flight_number, Ticket.dep_date, Ticket.dep_time) =
	(Flight.flight_number, Flight.dep_date, Flight.dep_time)`
