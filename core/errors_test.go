package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	cause := errors.New("n is invalid")
	err := NewValidationError(cause, FieldError{Field: "n", Error: "too big"})

	assert.Equal(t, "n is invalid", err.Error())
	assert.True(t, errors.Is(err, cause))

	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, map[string]string{"n": "too big"}, vErr.FieldMap())
	}

	assert.Nil(t, ValidationError{}.FieldMap())
	assert.Equal(t, "", ValidationError{}.Error())
}

func TestIsShutdown(t *testing.T) {
	err := NewShutdownError("integrity issue")
	assert.True(t, IsShutdown(err))
	assert.True(t, IsShutdown(errors.Wrap(err, "calculating")))
	assert.False(t, IsShutdown(errors.New("integrity issue")))
}
