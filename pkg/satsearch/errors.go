package satsearch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when credentials are nil or either
	// token is empty.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidURI is returned when a base URI is not an absolute http or
	// https URI.
	ErrInvalidURI = errors.New("invalid URI")

	// ErrTransport marks failures talking to the SatSearch service: network
	// errors and non-2xx responses.
	ErrTransport = errors.New("transport failure")

	// ErrDeserialization is returned when a response body cannot be decoded.
	ErrDeserialization = errors.New("deserialization failure")
)

// APIError is returned for any non-2xx response from the SatSearch service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("SatSearch API error (status %d): %s", e.StatusCode, e.Body)
}

// Is reports APIError as a transport failure so callers can match either
// the concrete type or ErrTransport.
func (e *APIError) Is(target error) bool {
	return target == ErrTransport
}
