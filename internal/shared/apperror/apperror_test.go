package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", Validation("quantity must be at least 1"), http.StatusBadRequest},
		{"not found", NotFound("event"), http.StatusNotFound},
		{"authorization", Authorization("not the event owner"), http.StatusForbidden},
		{"conflict", Conflict("illegal transition"), http.StatusConflict},
		{"query", Query(errors.New("syntax error")), http.StatusInternalServerError},
		{"connectivity", Connectivity(errors.New("dial tcp refused")), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("creating order: %w", NotFound("event"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "event not found", Message(err))
}

func TestFromGorm(t *testing.T) {
	notFound := FromGorm(gorm.ErrRecordNotFound, "order")
	require.Equal(t, KindNotFound, notFound.Kind)
	assert.Equal(t, "order not found", notFound.Message)

	dup := FromGorm(gorm.ErrDuplicatedKey, "vendor")
	assert.Equal(t, KindConflict, dup.Kind)

	other := FromGorm(errors.New("deadlock detected"), "order")
	assert.Equal(t, KindQuery, other.Kind)
	assert.ErrorContains(t, other, "deadlock")
}

func TestMessageHidesInternalDetail(t *testing.T) {
	err := Query(errors.New("pq: relation \"orders\" does not exist"))
	assert.Equal(t, "data store query failed", Message(err))
	assert.Equal(t, "internal error", Message(errors.New("raw driver error")))
}
