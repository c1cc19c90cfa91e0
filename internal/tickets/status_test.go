package tickets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusUsed, StatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("expired").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusActive.CanTransitionTo(StatusUsed))
	assert.True(t, StatusActive.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusUsed.CanTransitionTo(StatusUsed))

	assert.False(t, StatusUsed.CanTransitionTo(StatusActive))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusActive))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusUsed))
}
