package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrShapeMismatch", ErrShapeMismatch},
		{"ErrUnknownEnumValue", ErrUnknownEnumValue},
		{"ErrMissingField", ErrMissingField},
		{"ErrTransport", ErrTransport},
		{"ErrTrackerNotConfigured", ErrTrackerNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that mapping errors do not match each other
func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrShapeMismatch, ErrMissingField))
	assert.False(t, errors.Is(ErrMissingField, ErrUnknownEnumValue))
	assert.False(t, errors.Is(ErrTransport, ErrShapeMismatch))
}

// TestErrors_Wrapped tests sentinel matching through fmt.Errorf wrapping
func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("map issue: %w", ErrMissingField)

	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "missing required field")
}
