package enum

// Role is the resolved role of a user. RoleUnknown means no role row exists
// for the user; it is a real state and must never be collapsed into either
// concrete role.
type Role string

const (
	RoleUnknown  Role = ""
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer
	case RoleManager:
		return RoleManager
	default:
		return RoleUnknown
	}
}

func (r Role) Known() bool {
	return r == RoleCustomer || r == RoleManager
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}
