package statxplore

import (
	"fmt"
)

// AuthenticationError indicates that Stat-Xplore rejected the API key. It is
// never retried; a bad key cannot become good.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login to stat-xplore failed with status %d: check that the supplied key is correct", e.StatusCode)
}

// Code satisfies the coder interface used for event handling errors.
func (e *AuthenticationError) Code() int {
	return e.StatusCode
}

// RequestFailedError indicates that Stat-Xplore rejected the query itself.
// Detail carries the service's error message when one was returned.
type RequestFailedError struct {
	StatusCode int
	Detail     string
}

func (e *RequestFailedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("stat-xplore rejected the query with status %d: check that it is valid", e.StatusCode)
	}
	return fmt.Sprintf("stat-xplore rejected the query with status %d: %s", e.StatusCode, e.Detail)
}

func (e *RequestFailedError) Code() int {
	return e.StatusCode
}

// ServiceUnavailableError indicates that the retry budget was exhausted on
// transient failures. Err holds the last connection-level error, if the final
// attempt failed before receiving a status code.
type ServiceUnavailableError struct {
	Attempts   int
	StatusCode int
	Err        error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stat-xplore unavailable after %d attempts: %s", e.Attempts, e.Err)
	}
	return fmt.Sprintf("stat-xplore unavailable after %d attempts, last status %d: it may be down for maintenance", e.Attempts, e.StatusCode)
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Err
}

// LogData satisfies the dataLogger interface.
func (e *ServiceUnavailableError) LogData() map[string]interface{} {
	return map[string]interface{}{
		"attempts":    e.Attempts,
		"status_code": e.StatusCode,
	}
}

// UnexpectedResponseError indicates a terminal status outside the known
// taxonomy. The body is retained for diagnosis.
type UnexpectedResponseError struct {
	StatusCode int
	Body       []byte
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from stat-xplore: status %d", e.StatusCode)
}

func (e *UnexpectedResponseError) Code() int {
	return e.StatusCode
}

func (e *UnexpectedResponseError) LogData() map[string]interface{} {
	return map[string]interface{}{
		"status_code": e.StatusCode,
		"body":        string(e.Body),
	}
}

// MalformedQueryError indicates that a query source did not contain valid
// JSON.
type MalformedQueryError struct {
	Err error
}

func (e *MalformedQueryError) Error() string {
	return fmt.Sprintf("malformed query: %s", e.Err)
}

func (e *MalformedQueryError) Unwrap() error {
	return e.Err
}

// QueryNotFoundError indicates that a query file path could not be opened.
type QueryNotFoundError struct {
	Path string
	Err  error
}

func (e *QueryNotFoundError) Error() string {
	return fmt.Sprintf("query file %q not found: %s", e.Path, e.Err)
}

func (e *QueryNotFoundError) Unwrap() error {
	return e.Err
}
