package constants

import "fmt"

// User roles. No hierarchy: a route requires exactly one of these.
const (
	RoleNews       = "news"
	RoleActivities = "activities"
	RoleCenters    = "centers"
)

var AllRoles = []string{
	RoleNews,
	RoleActivities,
	RoleCenters,
}

// Error message template for the role gate.
const ErrOnlyRoleCanAccess = "❌ Only %s users may access %s."

func RoleError(role, feature string) string {
	return fmt.Sprintf(ErrOnlyRoleCanAccess, role, feature)
}
