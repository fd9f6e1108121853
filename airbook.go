package airbook

import (
	"github.com/PIG208/Airbook/database"
)

// Airbook is the core of the booking backend. Handlers call into it with
// a session and a request; it owns filter dispatch, access control,
// identity forcing and account operations, and delegates storage to the
// datasource.
type Airbook struct {
	datasource database.IDataSource
}

// NewAirbook initializes the core with the provided database datasource.
func NewAirbook(db database.IDataSource) (*Airbook, error) {
	return &Airbook{datasource: db}, nil
}
