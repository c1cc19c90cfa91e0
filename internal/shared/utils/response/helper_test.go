package response

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingDetailFlattensFieldErrors(t *testing.T) {
	type payload struct {
		EventID  string  `validate:"required,uuid"`
		Quantity int     `validate:"required,gte=1"`
		Amount   float64 `validate:"gt=0"`
	}

	err := validator.New().Struct(payload{EventID: "nope", Amount: -1})
	require.Error(t, err)

	detail := bindingDetail(err)
	assert.Contains(t, detail, "eventid must be a valid uuid")
	assert.Contains(t, detail, "quantity is required")
	assert.Contains(t, detail, "amount must be greater than 0")
}

func TestBindingDetailPassesThroughPlainErrors(t *testing.T) {
	err := errors.New("unexpected EOF")
	assert.Equal(t, "unexpected EOF", bindingDetail(err))
}
