package service

import "errors"

// Sentinel errors for the outcomes the transport layer has to tell
// apart. Anything else coming out of the service is a store failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)
