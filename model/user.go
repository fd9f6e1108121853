package model

// Customer is a registered traveler. Password and Salt hold the PBKDF2
// hash and its salt, both hex encoded; the plain password never persists.
type Customer struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	Password           string `json:"-"`
	Salt               string `json:"-"`
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

// AirlineStaff belongs to exactly one airline; that airline scopes every
// report the staff member can run.
type AirlineStaff struct {
	Username    string `json:"username"`
	Password    string `json:"-"`
	Salt        string `json:"-"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	AirlineName string `json:"airline_name"`
}

// BookingAgent books tickets on behalf of customers and is identified by
// the (email, id) pair at login.
type BookingAgent struct {
	ID       int    `json:"booking_agent_id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Salt     string `json:"-"`
}
