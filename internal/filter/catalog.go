package filter

import (
	"fmt"

	"github.com/pkg/errors"
)

// Name identifies an externally addressable filter. The set is closed:
// every Name maps either to a static query or to one of the advanced
// builder functions, and nothing can be registered at runtime.
type Name string

const (
	AllFutureFlights      Name = "all_future"
	CustomerFutureFlights Name = "customer_future"
	CustomerTickets       Name = "customer_tickets"
	FlightComments        Name = "flight_comments"
	DelayedFlights        Name = "delayed_flights"
	TicketedCustomers     Name = "ticketed_customers"
	AdvancedFlight        Name = "advanced_flight"
	AdvancedSpendings     Name = "advanced_spendings"
)

// ErrUnimplemented signals a catalog gap: a known filter name with
// neither a static query nor an advanced builder behind it. This is a
// deployment defect, not a user-input problem.
var ErrUnimplemented = errors.New("filter has no query mapping")

// staticQuery is a fixed parameterized statement plus the criteria keys
// that bind its placeholders, in placeholder order.
type staticQuery struct {
	SQL  string
	Keys []string
}

var staticQueries = map[Name]staticQuery{
	AllFutureFlights: {
		SQL: "SELECT * FROM future_flights",
	},
	CustomerFutureFlights: {
		SQL: "SELECT * FROM future_flights WHERE EXISTS (" +
			"SELECT * FROM Ticket WHERE email = ? AND " +
			"(Ticket.dep_date, Ticket.dep_time, Ticket.flight_number) = " +
			"(future_flights.dep_date, future_flights.dep_time, future_flights.flight_number))",
		Keys: []string{"email"},
	},
	CustomerTickets: {
		SQL:  "SELECT * FROM ticket_details WHERE email = ?",
		Keys: []string{"email"},
	},
	FlightComments: {
		SQL:  "SELECT * FROM Feedback WHERE flight_number = ? AND dep_date = ? AND dep_time = ?",
		Keys: []string{"flight_number", "dep_date", "dep_time"},
	},
	DelayedFlights: {
		SQL: "SELECT * FROM Flight WHERE status = 'delayed'",
	},
	TicketedCustomers: {
		SQL: "SELECT * FROM Customer WHERE EXISTS (" +
			"SELECT * FROM Ticket WHERE Ticket.email = Customer.email)",
	},
}

var advancedFilters = map[Name]struct{}{
	AdvancedFlight:    {},
	AdvancedSpendings: {},
}

// ParseName validates an external filter identifier against the closed
// catalog.
func ParseName(raw string) (Name, bool) {
	name := Name(raw)
	if _, ok := staticQueries[name]; ok {
		return name, true
	}
	if _, ok := advancedFilters[name]; ok {
		return name, true
	}
	return "", false
}

// IsAdvanced reports whether name requires criteria-driven construction
// instead of a static query.
func IsAdvanced(name Name) bool {
	_, ok := advancedFilters[name]
	return ok
}

// BuildQuery resolves a filter name and its criteria into executable SQL
// with positional parameters. Static filters bind their declared keys in
// order; advanced filters destructure the bag into typed sub-criteria for
// a builder function.
func BuildQuery(name Name, criteria Criteria) (string, []interface{}, error) {
	if !IsAdvanced(name) {
		q, ok := staticQueries[name]
		if !ok {
			return "", nil, errors.Wrapf(ErrUnimplemented, "filter %s", name)
		}
		args := make([]interface{}, 0, len(q.Keys))
		for _, key := range q.Keys {
			v, ok := criteria[key]
			if !ok {
				return "", nil, &MissingKeyError{Key: key}
			}
			args = append(args, v)
		}
		return q.SQL, args, nil
	}

	switch name {
	case AdvancedFlight:
		return flightSearchFromCriteria(criteria).Build()
	case AdvancedSpendings:
		search, err := spendingsSearchFromCriteria(criteria)
		if err != nil {
			return "", nil, err
		}
		return search.Build()
	default:
		return "", nil, errors.Wrapf(ErrUnimplemented, "advanced filter %s", name)
	}
}

// FlightSearch is the criteria set for the advanced flight filter. Zero
// values mean "unconstrained" throughout.
type FlightSearch struct {
	FlightNumber   *int
	FilterByEmails bool
	DepDate        Range
	DepTime        Range
	ArrDate        Range
	ArrTime        Range
	DepAirport     string
	DepCity        string
	ArrAirport     string
	ArrCity        string
	AirlineName    string
	Emails         *Set
	IsCustomer     bool
}

func flightSearchFromCriteria(c Criteria) FlightSearch {
	isCustomer := true
	if v, ok := c["is_customer"]; ok {
		b, _ := v.(bool)
		isCustomer = b
	}
	return FlightSearch{
		FlightNumber:   c.Int("flight_number"),
		FilterByEmails: c.Bool("filter_by_emails"),
		DepDate:        c.Range("dep_date"),
		DepTime:        c.Range("dep_time"),
		ArrDate:        c.Range("arr_date"),
		ArrTime:        c.Range("arr_time"),
		DepAirport:     c.String("dep_airport"),
		DepCity:        c.String("dep_city"),
		ArrAirport:     c.String("arr_airport"),
		ArrCity:        c.String("arr_city"),
		AirlineName:    c.String("airline_name"),
		Emails:         c.Set("emails"),
		IsCustomer:     isCustomer,
	}
}

// Build renders the flight search. City criteria only exist on the
// verbose_flights view, so their presence switches the base table. The
// ownership sub-filter restricts to flights carrying a ticket owned by
// one of the given identities, joined through BookingAgent when the
// caller is an agent.
func (s FlightSearch) Build() (string, []interface{}, error) {
	table := "Flight"
	if s.DepCity != "" || s.ArrCity != "" {
		table = "verbose_flights"
	}

	f := NewFilter("SELECT * FROM " + table + " {where}")
	f.AddDateTimeWindow("dep_date", "dep_time", s.DepDate, s.DepTime)
	f.AddDateTimeWindow("arr_date", "arr_time", s.ArrDate, s.ArrTime)
	f.AddEquality("flight_number", s.FlightNumber)
	f.AddEquality("dep_airport", s.DepAirport)
	f.AddEquality("arr_airport", s.ArrAirport)
	f.AddEquality("dep_city", s.DepCity)
	f.AddEquality("arr_city", s.ArrCity)
	f.AddEquality("airline_name", s.AirlineName)
	if s.FilterByEmails && s.Emails.Len() > 0 {
		f.AddSubFilter(s.ownershipFilter(table))
	}
	return f.Statement()
}

func (s FlightSearch) ownershipFilter(table string) *Filter {
	var owned *Filter
	if s.IsCustomer {
		owned = NewFilter("EXISTS (SELECT * FROM Ticket {where})").
			AddSet("email", s.Emails)
	} else {
		owned = NewFilter("EXISTS (SELECT * FROM Ticket JOIN BookingAgent ON "+
			"(Ticket.booking_agent_id = BookingAgent.booking_agent_id) {where})").
			AddSet("BookingAgent.email", s.Emails)
	}
	return owned.AddStatic(
		"(Ticket.dep_date, Ticket.dep_time, Ticket.flight_number) = " +
			"(" + table + ".dep_date, " + table + ".dep_time, " + table + ".flight_number)",
	)
}

// Grouping buckets spendings rows by calendar unit. It doubles as the SQL
// function name, so only whitelisted values ever reach the query text.
type Grouping string

const (
	GroupNone  Grouping = ""
	GroupDay   Grouping = "DAY"
	GroupMonth Grouping = "MONTH"
	GroupYear  Grouping = "YEAR"
)

// ParseGrouping maps external input to a Grouping, falling back to no
// grouping for anything outside the whitelist.
func ParseGrouping(raw string) Grouping {
	switch Grouping(raw) {
	case GroupDay:
		return GroupDay
	case GroupMonth:
		return GroupMonth
	case GroupYear:
		return GroupYear
	default:
		return GroupNone
	}
}

// SpendingsSearch is the criteria set for the advanced spendings filter.
// Emails is mandatory: spendings are always scoped to an identity.
type SpendingsSearch struct {
	Emails       *Set
	AgentID      *int
	AirlineName  string
	PurchaseDate Range
	PurchaseTime Range
	Group        Grouping
}

func spendingsSearchFromCriteria(c Criteria) (SpendingsSearch, error) {
	emails, err := c.RequireSet("emails")
	if err != nil {
		return SpendingsSearch{}, err
	}
	return SpendingsSearch{
		Emails:       emails,
		AgentID:      c.Int("booking_agent_id"),
		AirlineName:  c.String("airline_name"),
		PurchaseDate: c.Range("purchase_date"),
		PurchaseTime: c.Range("purchase_time"),
		Group:        ParseGrouping(c.String("group")),
	}, nil
}

// Build renders the spendings search. Grouping swaps the base template
// for an aggregated one instead of adding predicates.
func (s SpendingsSearch) Build() (string, []interface{}, error) {
	var f *Filter
	if s.Group != GroupNone {
		f = NewFilter(fmt.Sprintf(
			"SELECT %s(purchase_date) AS period, SUM(actual_price) AS total, COUNT(*) AS purchases "+
				"FROM spendings {where} GROUP BY %s(purchase_date)", s.Group, s.Group))
	} else {
		f = NewFilter("SELECT purchase_date, actual_price FROM spendings {where}")
	}
	f.AddDateTimeWindow("purchase_date", "purchase_time", s.PurchaseDate, s.PurchaseTime)
	f.AddSet("email", s.Emails)
	f.AddEquality("booking_agent_id", s.AgentID)
	f.AddEquality("airline_name", s.AirlineName)
	return f.Statement()
}
