package services

import "errors"

// ErrInvalidCredentials is returned when the password hash comparison fails.
var ErrInvalidCredentials = errors.New("services: invalid credentials")

// ValidationError reports a request that is missing required fields. The
// message is client-visible.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
