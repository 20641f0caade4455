package bugzilla

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/bzbridge/internal/core/domain"
)

// ShapeError reports a remote value whose shape disagrees with the shape
// required to keep decoding.
type ShapeError struct {
	Field string
	Want  string
	Got   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("bugzilla: field %q: expected %s, got %s", e.Field, e.Want, e.Got)
}

// Is matches domain.ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == domain.ErrShapeMismatch
}

// EnumError reports a status or type code outside the domain enumeration.
type EnumError struct {
	Field string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("bugzilla: field %q: unknown value %q", e.Field, e.Value)
}

// Is matches domain.ErrUnknownEnumValue.
func (e *EnumError) Is(target error) bool {
	return target == domain.ErrUnknownEnumValue
}

// MissingFieldError reports a required field that was absent from the reply.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("bugzilla: required field %q is missing", e.Field)
}

// Is matches domain.ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == domain.ErrMissingField
}

// TransportError reports a remote call that could not be completed.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bugzilla: %s failed: %v", e.Method, e.Err)
}

// Unwrap returns the underlying invoker error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches domain.ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == domain.ErrTransport
}

// IsShapeMismatch checks if the error is a shape mismatch.
func IsShapeMismatch(err error) bool {
	return errors.Is(err, domain.ErrShapeMismatch)
}

// IsUnknownEnum checks if the error is an unknown status or type code.
func IsUnknownEnum(err error) bool {
	return errors.Is(err, domain.ErrUnknownEnumValue)
}

// IsMissingField checks if the error is a missing required field.
func IsMissingField(err error) bool {
	return errors.Is(err, domain.ErrMissingField)
}

// IsTransport checks if the error is a failed remote call.
func IsTransport(err error) bool {
	return errors.Is(err, domain.ErrTransport)
}
