package airbook

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/PIG208/Airbook/database"
	"github.com/PIG208/Airbook/internal/apierror"
	"github.com/PIG208/Airbook/internal/auth"
	"github.com/PIG208/Airbook/internal/filter"
)

// reservedKeys lists the criteria each role has forced in from its
// session. A request body supplying any of them is trying to search as
// somebody else, so it is rejected before the identity is applied.
var reservedKeys = map[auth.Role][]string{
	auth.RoleCustomer: {"email", "emails", "is_customer"},
	auth.RoleAgent:    {"emails", "booking_agent_id", "is_customer"},
	auth.RoleStaff:    {"username", "airline_name"},
}

// Search resolves a filter name, checks the session's access, overlays
// the session identity onto the criteria and executes the resulting
// query. All failures come back as APIErrors ready for the HTTP layer.
func (a Airbook) Search(ctx context.Context, session *auth.Session, rawFilter string, criteria filter.Criteria) ([]database.Row, error) {
	name, ok := filter.ParseName(rawFilter)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrBadRequest,
			fmt.Sprintf("The requested filter %q does not exist!", rawFilter), nil)
	}

	role := auth.RoleAnonymous
	if session != nil {
		role = session.Role
	}
	if !auth.HasAccess(role, name) {
		return nil, apierror.NewAPIError(apierror.ErrPermissionDenied,
			"You don't have the permission to use this filter!", nil)
	}

	criteria, err := a.applyIdentity(ctx, session, criteria)
	if err != nil {
		return nil, err
	}

	sqlText, args, err := filter.BuildQuery(name, criteria)
	if err != nil {
		return nil, classifyBuildError(err)
	}

	logrus.WithFields(logrus.Fields{
		"filter": name,
		"role":   role,
	}).Info("executing search")

	rows, err := a.datasource.RunQuery(ctx, sqlText, args, database.FetchAll, 0)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer,
			"Something went wrong internally!", err)
	}
	return rows, nil
}

// applyIdentity copies the criteria bag and overlays the session's
// identity keys. The copy keeps the caller's map untouched; handlers may
// reuse it across retries.
func (a Airbook) applyIdentity(ctx context.Context, session *auth.Session, criteria filter.Criteria) (filter.Criteria, error) {
	role := auth.RoleAnonymous
	if session != nil {
		role = session.Role
	}
	for _, key := range reservedKeys[role] {
		if _, ok := criteria[key]; ok {
			return nil, apierror.NewAPIError(apierror.ErrBadRequest,
				"Malformed request! Are you attempting to pass your email address?", nil)
		}
	}

	merged := make(filter.Criteria, len(criteria)+4)
	for k, v := range criteria {
		merged[k] = v
	}

	switch role {
	case auth.RoleCustomer:
		merged["email"] = session.Email
		merged["emails"] = []string{session.Email}
		merged["is_customer"] = true
	case auth.RoleAgent:
		merged["emails"] = []string{session.AgentEmail}
		merged["booking_agent_id"] = session.AgentID
		merged["is_customer"] = false
	case auth.RoleStaff:
		airline, err := a.datasource.GetStaffAirline(ctx, session.Username)
		if err != nil {
			return nil, err
		}
		merged["username"] = session.Username
		merged["airline_name"] = airline
	}
	return merged, nil
}

func classifyBuildError(err error) error {
	var missing *filter.MissingKeyError
	if errors.As(err, &missing) {
		return apierror.NewAPIError(apierror.ErrBadRequest, missing.Error(),
			map[string]string{"key": missing.Key})
	}
	return apierror.NewAPIError(apierror.ErrInternalServer,
		"Something went wrong internally!", err)
}
