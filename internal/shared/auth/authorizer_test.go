package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanMutateEvent(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	authz := NewAuthorizer()

	t.Run("owner may mutate", func(t *testing.T) {
		assert.True(t, authz.CanMutateEvent(Actor{VendorID: owner}, owner))
	})

	t.Run("other vendor may not", func(t *testing.T) {
		assert.False(t, authz.CanMutateEvent(Actor{VendorID: other}, owner))
	})

	t.Run("admin overrides ownership", func(t *testing.T) {
		assert.True(t, authz.CanMutateEvent(Actor{VendorID: other, Admin: true}, owner))
		assert.True(t, authz.CanMutateEvent(Actor{Admin: true}, owner))
	})

	t.Run("anonymous may not", func(t *testing.T) {
		assert.False(t, authz.CanMutateEvent(Actor{}, owner))
	})
}

func TestIsAdmin(t *testing.T) {
	authz := NewAuthorizer()
	assert.True(t, authz.IsAdmin(Actor{Admin: true}))
	assert.False(t, authz.IsAdmin(Actor{VendorID: uuid.New()}))
}
