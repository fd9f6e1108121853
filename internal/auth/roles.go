package auth

// Role identifies which kind of account a session belongs to. The empty
// Role means the caller is anonymous.
type Role string

const (
	RoleAnonymous Role = ""
	RoleCustomer  Role = "cust"
	RoleStaff     Role = "staff"
	RoleAgent     Role = "agent"
)

// ParseRole validates an external role identifier.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCustomer, RoleStaff, RoleAgent:
		return Role(raw), true
	}
	return RoleAnonymous, false
}

// Session is the identity established by a login, threaded explicitly
// into every operation that needs it. Only the fields matching Role are
// populated. The core never mutates a Session; it is read-only state
// derived from the session token.
type Session struct {
	Role       Role   `json:"user_type"`
	Email      string `json:"email,omitempty"`
	AgentID    int    `json:"agent_id,omitempty"`
	AgentEmail string `json:"agent_email,omitempty"`
	Username   string `json:"username,omitempty"`
}

// Identifier returns the principal that logged in, whatever its role.
func (s *Session) Identifier() string {
	if s == nil {
		return ""
	}
	switch s.Role {
	case RoleCustomer:
		return s.Email
	case RoleAgent:
		return s.AgentEmail
	case RoleStaff:
		return s.Username
	}
	return ""
}
