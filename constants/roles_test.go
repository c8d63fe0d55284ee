package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	ordered := []string{RoleUser, RoleStudent, RoleInstructor, RoleAdmin}

	for i, actual := range ordered {
		for j, required := range ordered {
			got := HasPermission(actual, required)
			assert.Equal(t, i >= j, got, "HasPermission(%s, %s)", actual, required)
		}
	}
}

func TestHasPermissionUnknownRole(t *testing.T) {
	assert.False(t, HasPermission("SUPER-ADMIN", RoleUser))
	assert.False(t, HasPermission("", RoleUser))
	assert.False(t, HasPermission(RoleAdmin, "OWNER"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleInstructor))
	assert.False(t, IsValidRole("instructor"))
	assert.False(t, IsValidRole(""))
}
