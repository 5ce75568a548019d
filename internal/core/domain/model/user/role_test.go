package user_test

import (
	"testing"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	for _, role := range []user.Role{user.Customer, user.Owner, user.Delivery} {
		require.NoError(t, role.Validate())
	}

	require.Error(t, user.UnknownRole.Validate())
	require.Error(t, user.Role(99).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Customer", user.Customer.String())
	assert.Equal(t, "Owner", user.Owner.String())
	assert.Equal(t, "Delivery", user.Delivery.String())
	assert.Equal(t, "Unknown", user.Role(99).String())
}

func TestParseRole(t *testing.T) {
	t.Run("round_trips_valid_roles", func(t *testing.T) {
		for _, role := range []user.Role{user.Customer, user.Owner, user.Delivery} {
			parsed, err := user.ParseRole(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		for _, raw := range []string{"", "customer", "Admin", "Unknown"} {
			_, err := user.ParseRole(raw)
			require.Error(t, err)
		}
	})
}

func TestNewVerification(t *testing.T) {
	v, err := user.NewVerification(3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), v.UserID())
	assert.Len(t, v.Code(), 32)
	assert.NotContains(t, v.Code(), "-")
	require.NoError(t, v.Validate())

	// Codes must be unique per issue.
	other, err := user.NewVerification(3)
	require.NoError(t, err)
	assert.NotEqual(t, v.Code(), other.Code())

	_, err = user.NewVerification(0)
	require.Error(t, err)
}
