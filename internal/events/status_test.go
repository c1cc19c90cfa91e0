package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPending, StatusActive, StatusCancelled, StatusCompleted} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusActive))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusActive.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusDraft.CanTransitionTo(StatusPending))

	assert.False(t, StatusCancelled.CanTransitionTo(StatusActive))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusPending))
	assert.False(t, StatusActive.CanTransitionTo(StatusPending))
}

func TestAdminAssignable(t *testing.T) {
	assert.True(t, StatusActive.AdminAssignable())
	assert.True(t, StatusCancelled.AdminAssignable())
	assert.False(t, StatusDraft.AdminAssignable())
}
