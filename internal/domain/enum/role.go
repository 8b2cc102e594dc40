package enum

// Role names for staff profiles.
const (
	RoleAdmin  = "admin"
	RoleWaiter = "waiter"
)

// IsValidRole reports whether the given role name is recognized.
func IsValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleWaiter:
		return true
	}
	return false
}
