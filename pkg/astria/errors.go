package astria

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// TransportError reports a request that never produced an HTTP response:
// DNS, connection, TLS or timeout failures from the underlying transport.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthenticationFailedError is returned for HTTP 401 responses.
type AuthenticationFailedError struct {
	// Message is the server provided message, when the body carried one.
	Message  string
	Response *RawResponse
}

// Error implements the error interface.
func (e *AuthenticationFailedError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}

	return "authentication failed: " + e.Message
}

// NotFoundError is returned for HTTP 404 responses.
type NotFoundError struct {
	Message  string
	Response *RawResponse
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "resource not found"
	}

	return "resource not found: " + e.Message
}

// RequestError is returned for every non-2xx response other than 401 and 404.
type RequestError struct {
	Message  string
	Response *RawResponse
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	status := 0
	if e.Response != nil {
		status = e.Response.StatusCode
	}

	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d %s", status, http.StatusText(status))
	}

	return fmt.Sprintf("request failed with status %d: %s", status, e.Message)
}

// StatusCode returns the HTTP status of the failed response.
func (e *RequestError) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// ErrorMessage extracts the "message" field of a JSON error body.
// It returns an empty string when the body is not JSON or has no message.
func ErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}

	if json.Unmarshal(body, &payload) != nil {
		return ""
	}

	return payload.Message
}

// CheckResponse classifies resp by status code. It returns nil for 2xx
// responses and a typed error carrying resp for everything else.
func CheckResponse(resp *RawResponse) error {
	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return &AuthenticationFailedError{Message: ErrorMessage(resp.Body), Response: resp}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Message: ErrorMessage(resp.Body), Response: resp}
	default:
		return &RequestError{Message: ErrorMessage(resp.Body), Response: resp}
	}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	authErr := &AuthenticationFailedError{}

	return errors.As(err, &authErr)
}

// IsTransportError checks if the error came from the transport rather than an HTTP status.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
