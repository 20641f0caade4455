package bugzilla

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

func TestShapeError(t *testing.T) {
	err := &ShapeError{Field: "flags[0]", Want: "struct", Got: "string"}

	assert.Equal(t, `bugzilla: field "flags[0]": expected struct, got string`, err.Error())
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)
	assert.False(t, errors.Is(err, domain.ErrMissingField))
}

func TestEnumError(t *testing.T) {
	err := &EnumError{Field: "status", Value: "REOPENED"}

	assert.Equal(t, `bugzilla: field "status": unknown value "REOPENED"`, err.Error())
	assert.True(t, IsUnknownEnum(err))
	assert.False(t, IsShapeMismatch(err))
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Field: "version"}

	assert.Equal(t, `bugzilla: required field "version" is missing`, err.Error())
	assert.True(t, IsMissingField(err))
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Method: MethodGetBug, Err: cause}

	assert.Equal(t, "bugzilla: Bug.get failed: connection refused", err.Error())
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, cause)
}

func TestIsHelpers_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("map issue 1: %w", &MissingFieldError{Field: "id"})

	assert.True(t, IsMissingField(wrapped))
	assert.False(t, IsTransport(wrapped))
	assert.False(t, IsUnknownEnum(nil))
}
