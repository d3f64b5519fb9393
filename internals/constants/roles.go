package constants

import "fmt"

// Fixed role set. Seeded once at startup (or via /api/auth/seed-roles);
// every user holds exactly one of these at a time.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Default role granted at registration.
const DefaultRole = RoleUser

// Role error message templates
const (
	ErrOnlyManagersCanAccess = "Only manager, admin, or owner may access %s."
	ErrOnlyAdminsCanAccess   = "Only admin or owner may access %s."
	ErrOnlyOwnersCanAccess   = "Only owner may access %s."
)

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleManager,
		RoleUser,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)

// IsKnownRole reports whether name is one of the seeded roles.
func IsKnownRole(name string) bool {
	for _, r := range AllRoles {
		if r == name {
			return true
		}
	}
	return false
}
