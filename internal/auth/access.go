package auth

import (
	"github.com/PIG208/Airbook/internal/filter"
)

// Filter access is a static three-tier classification: public filters are
// open to anonymous callers, protected filters to any authenticated role,
// and the rest to the specific roles listed for them. A filter in none of
// the tiers is denied to everyone.

var publicFilters = map[filter.Name]struct{}{
	filter.AllFutureFlights: {},
}

var protectedFilters = map[filter.Name]struct{}{
	filter.AdvancedFlight: {},
	filter.FlightComments: {},
}

var roleFilters = map[Role]map[filter.Name]struct{}{
	RoleCustomer: {
		filter.CustomerFutureFlights: {},
		filter.CustomerTickets:       {},
		filter.AdvancedSpendings:     {},
	},
	RoleAgent: {
		filter.AdvancedSpendings: {},
	},
	RoleStaff: {
		filter.DelayedFlights:    {},
		filter.TicketedCustomers: {},
	},
}

// IsPublic reports whether name is reachable without any session.
func IsPublic(name filter.Name) bool {
	_, ok := publicFilters[name]
	return ok
}

// HasAccess decides whether a caller with the given role may invoke the
// named filter. The decision is pure; translating a denial into an error
// is the caller's business. A role without an entry in the role map
// simply has no role-specific filters.
func HasAccess(role Role, name filter.Name) bool {
	if IsPublic(name) {
		return true
	}
	if role == RoleAnonymous {
		return false
	}
	if _, ok := protectedFilters[name]; ok {
		return true
	}
	_, ok := roleFilters[role][name]
	return ok
}
