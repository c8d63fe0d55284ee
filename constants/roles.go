package constants

// Roles ordered by privilege. Every higher role implies the permissions
// of the roles below it.
const (
	RoleUser       = "USER"
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

var roleRank = map[string]int{
	RoleUser:       0,
	RoleStudent:    1,
	RoleInstructor: 2,
	RoleAdmin:      3,
}

// IsValidRole reports whether role is one of the predefined roles.
func IsValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// HasPermission reports whether actualRole ranks at least as high as
// requiredRole. Unknown roles rank below USER and never pass.
func HasPermission(actualRole, requiredRole string) bool {
	actual, ok := roleRank[actualRole]
	if !ok {
		return false
	}
	required, ok := roleRank[requiredRole]
	if !ok {
		return false
	}
	return actual >= required
}
