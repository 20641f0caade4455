package rpc

import (
	"errors"
	"fmt"
)

// FaultError is an error reported by the tracker in a well-formed reply.
type FaultError struct {
	Code    int
	Message string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("fault %d: %s", e.Code, e.Message)
}

// StatusError is a non-2xx HTTP response from the endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// ErrUnexpectedReply is returned when a reply is not a struct.
var ErrUnexpectedReply = errors.New("reply is not a struct")

// IsFault checks if the error is a tracker fault.
func IsFault(err error) bool {
	var fault *FaultError
	return errors.As(err, &fault)
}
