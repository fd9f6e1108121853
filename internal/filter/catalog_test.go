package filter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseName(t *testing.T) {
	for _, raw := range []string{
		"all_future", "customer_future", "customer_tickets", "flight_comments",
		"delayed_flights", "ticketed_customers", "advanced_flight", "advanced_spendings",
	} {
		if _, ok := ParseName(raw); !ok {
			t.Errorf("expected %q to resolve", raw)
		}
	}
	if _, ok := ParseName("bogus"); ok {
		t.Error("expected unknown filter names to be rejected")
	}
}

func TestBuildQueryStatic(t *testing.T) {
	t.Run("binds declared keys in order", func(t *testing.T) {
		sql, args, err := BuildQuery(CustomerTickets, Criteria{"email": "speiaz123@nyu.edu"})
		if err != nil {
			t.Fatal(err)
		}
		if sql != "SELECT * FROM ticket_details WHERE email = ?" {
			t.Errorf("unexpected sql: %s", sql)
		}
		if !reflect.DeepEqual(args, []interface{}{"speiaz123@nyu.edu"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("no keys means no parameters", func(t *testing.T) {
		sql, args, err := BuildQuery(AllFutureFlights, Criteria{})
		if err != nil {
			t.Fatal(err)
		}
		if sql != "SELECT * FROM future_flights" || len(args) != 0 {
			t.Errorf("unexpected query: %s %v", sql, args)
		}
	})

	t.Run("missing key is a structured condition", func(t *testing.T) {
		_, _, err := BuildQuery(CustomerTickets, Criteria{})
		var missing *MissingKeyError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingKeyError, got %v", err)
		}
		if missing.Key != "email" {
			t.Errorf("expected missing key 'email', got %q", missing.Key)
		}
	})

	t.Run("multi-key static filter", func(t *testing.T) {
		sql, args, err := BuildQuery(FlightComments, Criteria{
			"flight_number": 2323,
			"dep_date":      "2021-05-28",
			"dep_time":      "15:31:14",
		})
		if err != nil {
			t.Fatal(err)
		}
		if sql != "SELECT * FROM Feedback WHERE flight_number = ? AND dep_date = ? AND dep_time = ?" {
			t.Errorf("unexpected sql: %s", sql)
		}
		if !reflect.DeepEqual(args, []interface{}{2323, "2021-05-28", "15:31:14"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})
}

func TestBuildFlightSearch(t *testing.T) {
	t.Run("no criteria selects everything", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedFlight, Criteria{})
		if err != nil {
			t.Fatal(err)
		}
		if sql != "SELECT * FROM Flight " || len(args) != 0 {
			t.Errorf("unexpected query: %q %v", sql, args)
		}
	})

	t.Run("city criteria switch to the verbose view", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedFlight, Criteria{
			"dep_airport": "JFK",
			"dep_city":    "New York City",
			"arr_airport": "ASD",
			"arr_city":    "ASD City",
		})
		if err != nil {
			t.Fatal(err)
		}
		want := "SELECT * FROM verbose_flights WHERE dep_airport = ? AND arr_airport = ? AND dep_city = ? AND arr_city = ?"
		if sql != want {
			t.Errorf("sql mismatch\n got: %s\nwant: %s", sql, want)
		}
		if !reflect.DeepEqual(args, []interface{}{"JFK", "ASD", "New York City", "ASD City"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("customer ownership renders an EXISTS sub-filter", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedFlight, Criteria{
			"filter_by_emails": true,
			"emails":           []string{"c@x.com"},
		})
		if err != nil {
			t.Fatal(err)
		}
		want := "SELECT * FROM Flight WHERE (EXISTS (SELECT * FROM Ticket WHERE email = ? AND " +
			"(Ticket.dep_date, Ticket.dep_time, Ticket.flight_number) = " +
			"(Flight.dep_date, Flight.dep_time, Flight.flight_number)))"
		if sql != want {
			t.Errorf("sql mismatch\n got: %s\nwant: %s", sql, want)
		}
		if !reflect.DeepEqual(args, []interface{}{"c@x.com"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("agent ownership joins through BookingAgent", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedFlight, Criteria{
			"filter_by_emails": true,
			"emails":           []string{"book3083@booking.com"},
			"is_customer":      false,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(sql, "JOIN BookingAgent ON (Ticket.booking_agent_id = BookingAgent.booking_agent_id)") {
			t.Errorf("expected agent join, got: %s", sql)
		}
		if !strings.Contains(sql, "BookingAgent.email = ?") {
			t.Errorf("expected agent email constraint, got: %s", sql)
		}
		if !reflect.DeepEqual(args, []interface{}{"book3083@booking.com"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("ownership without emails is skipped", func(t *testing.T) {
		sql, _, err := BuildQuery(AdvancedFlight, Criteria{"filter_by_emails": true})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(sql, "EXISTS") {
			t.Errorf("expected no ownership sub-filter, got: %s", sql)
		}
	})

	t.Run("full criteria keep call order", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedFlight, Criteria{
			"flight_number":  123,
			"dep_airport":    "JFK",
			"arr_airport":    "MSC",
			"airline_name":   "China Eastern",
			"dep_date_lower": "2020-11-22",
			"dep_date_upper": "2020-11-23",
		})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Count(sql, "?") != len(args) {
			t.Fatalf("placeholders and values diverged: %s %v", sql, args)
		}
		// The departure window renders first, then the equality chain.
		want := []interface{}{
			"2020-11-22", "2020-11-23",
			"2020-11-22", "2020-11-22",
			"2020-11-23", "2020-11-23",
			"2020-11-22", "2020-11-23",
			"JFK", "MSC", "China Eastern",
		}
		if !reflect.DeepEqual(args, want) {
			t.Errorf("args mismatch\n got: %v\nwant: %v", args, want)
		}
		if !strings.Contains(sql, "flight_number = 123") {
			t.Errorf("expected inlined flight number, got: %s", sql)
		}
	})
}

func TestBuildSpendingsSearch(t *testing.T) {
	t.Run("emails are mandatory", func(t *testing.T) {
		_, _, err := BuildQuery(AdvancedSpendings, Criteria{})
		var missing *MissingKeyError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingKeyError, got %v", err)
		}
		if missing.Key != "emails" {
			t.Errorf("expected missing key 'emails', got %q", missing.Key)
		}
	})

	t.Run("single email", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedSpendings, Criteria{
			"emails": []string{"ny2311@nyu.edu"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if sql != "SELECT purchase_date, actual_price FROM spendings WHERE email = ?" {
			t.Errorf("unexpected sql: %s", sql)
		}
		if !reflect.DeepEqual(args, []interface{}{"ny2311@nyu.edu"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("empty email set selects everything", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedSpendings, Criteria{
			"emails": []string{},
		})
		if err != nil {
			t.Fatal(err)
		}
		if sql != "SELECT purchase_date, actual_price FROM spendings " || len(args) != 0 {
			t.Errorf("unexpected query: %q %v", sql, args)
		}
	})

	t.Run("multiple emails render IN", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedSpendings, Criteria{
			"emails": []string{"asd", "ddd"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if sql != "SELECT purchase_date, actual_price FROM spendings WHERE email IN (?, ?)" {
			t.Errorf("unexpected sql: %s", sql)
		}
		if !reflect.DeepEqual(args, []interface{}{"asd", "ddd"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("grouping swaps the base template", func(t *testing.T) {
		sql, _, err := BuildQuery(AdvancedSpendings, Criteria{
			"emails": []string{"a@x.com"},
			"group":  "MONTH",
		})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(sql, "SELECT MONTH(purchase_date) AS period, SUM(actual_price) AS total, COUNT(*) AS purchases FROM spendings WHERE ") {
			t.Errorf("unexpected grouped sql: %s", sql)
		}
		if !strings.HasSuffix(sql, "GROUP BY MONTH(purchase_date)") {
			t.Errorf("expected GROUP BY clause, got: %s", sql)
		}
	})

	t.Run("grouping outside the whitelist is ignored", func(t *testing.T) {
		if g := ParseGrouping("WEEK); DROP TABLE spendings;--"); g != GroupNone {
			t.Errorf("expected unlisted grouping to fall back, got %q", g)
		}
		if g := ParseGrouping("DAY"); g != GroupDay {
			t.Errorf("expected DAY to parse, got %q", g)
		}
	})

	t.Run("agent restriction and purchase window", func(t *testing.T) {
		sql, args, err := BuildQuery(AdvancedSpendings, Criteria{
			"emails":               []string{"book3083@booking.com"},
			"booking_agent_id":     1,
			"purchase_date_lower":  "2021-01-01",
			"purchase_date_upper":  "2021-02-01",
			"purchase_time_lower":  "00:00:00",
			"purchase_time_upper":  "12:00:00",
		})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Count(sql, "?") != len(args) {
			t.Fatalf("placeholders and values diverged: %s %v", sql, args)
		}
		if !strings.Contains(sql, "booking_agent_id = 1") {
			t.Errorf("expected inlined agent id, got: %s", sql)
		}
	})
}
