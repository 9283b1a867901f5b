package enums

// Role is the closed set of account roles. Fan-out filtering and the
// staff-only routes depend on it staying closed.
type Role string

const (
	ROLE_CLIENT   Role = "client"
	ROLE_PREPARER Role = "preparer"
	ROLE_ADMIN    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case ROLE_CLIENT, ROLE_PREPARER, ROLE_ADMIN:
		return true
	}
	return false
}

// IsStaff reports whether the role belongs to office staff
// (preparers and admins), as opposed to clients.
func (r Role) IsStaff() bool {
	return r == ROLE_ADMIN || r == ROLE_PREPARER
}

func (r Role) IsAdmin() bool {
	return r == ROLE_ADMIN
}
