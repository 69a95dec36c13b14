package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "doctor", "therapist", "patient"} {
		role, err := ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, Role(valid), role)
	}

	for _, invalid := range []string{"", "Admin", "superuser", "doctor "} {
		_, err := ParseRole(invalid)
		assert.Error(t, err, "expected rejection of %q", invalid)
	}
}

func TestRoleIDRoundTrip(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleDoctor, RoleTherapist, RolePatient} {
		back, ok := RoleByID(role.ID())
		assert.True(t, ok)
		assert.Equal(t, role, back)
	}
}

func TestRoleByIDUnknown(t *testing.T) {
	for _, id := range []int{0, 5, -1} {
		_, ok := RoleByID(id)
		assert.False(t, ok)
	}
}
