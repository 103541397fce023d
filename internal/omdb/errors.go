package omdb

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps network failures and bodies that are not OMDb
	// JSON envelopes.
	ErrTransport = errors.New("omdb: transport failure")

	// ErrNotFound is returned when a lookup succeeds but carries no record.
	ErrNotFound = errors.New("omdb: record not found")
)

// APIError is a failure reported by OMDb itself (Response "False").
// Message is the API's Error field as sent, possibly empty.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "omdb: request failed"
	}
	return fmt.Sprintf("omdb: %s", e.Message)
}

// Message extracts the API-provided message from err, if err is an
// *APIError carrying one.
func Message(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// checkStatus maps an envelope's Response and Error fields to an error. A
// body without a Response field is not an OMDb answer at all.
func checkStatus(response, message string) error {
	switch response {
	case "True":
		return nil
	case "":
		return fmt.Errorf("%w: response without status", ErrTransport)
	default:
		return &APIError{Message: message}
	}
}
