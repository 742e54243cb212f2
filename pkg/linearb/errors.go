package linearb

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react without matching on
// message text.
type Kind string

const (
	KindConfig     Kind = "config"
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindAPI        Kind = "api"
	KindNotFound   Kind = "not_found"
)

// Error is the one error type that crosses package boundaries. Every
// failure reported to a caller carries one of the kinds above plus
// whatever context that kind needs.
type Error struct {
	Kind       Kind
	Field      string // parameter name, set for validation errors
	StatusCode int    // HTTP status, set for api errors
	Message    string
	err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindValidation && e.Field != "":
		return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Message)
	case e.Kind == KindAPI && e.StatusCode != 0:
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.err }

// NewConfigError reports a missing or unusable setting. Fatal at startup.
func NewConfigError(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// NewValidationError reports malformed caller input for one parameter.
// Raised before any network activity.
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewNetworkError reports a transport failure (timeout, refused
// connection). Never retried.
func NewNetworkError(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: message, err: err}
}

// NewAPIError reports a non-2xx response from the remote API.
func NewAPIError(statusCode int, message string) *Error {
	return &Error{Kind: KindAPI, StatusCode: statusCode, Message: message}
}

// NewNotFoundError reports a discovery lookup miss.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// AsError extracts an *Error from anywhere in an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
