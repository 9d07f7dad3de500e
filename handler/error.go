package handler

import (
	"errors"
)

// Error is the package error type. It wraps the underlying cause and carries
// structured data for logging.
type Error struct {
	err     error
	logData map[string]interface{}
}

// NewError creates a new Error
func NewError(err error, logData map[string]interface{}) *Error {
	return &Error{
		err:     err,
		logData: logData,
	}
}

// Error implements the Go standard error interface
func (e *Error) Error() string {
	if e.err == nil {
		return "nil error"
	}
	return e.err.Error()
}

// LogData implements the dataLogger interface which allows log data to be
// embedded in and retrieved from an error
func (e *Error) LogData() map[string]interface{} {
	return e.logData
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.err
}

// dataLogger is implemented by errors that carry structured log data
type dataLogger interface {
	LogData() map[string]interface{}
}

// unwrapLogData returns the log data embedded in err, if any
func unwrapLogData(err error) map[string]interface{} {
	var lderr dataLogger
	if errors.As(err, &lderr) {
		return lderr.LogData()
	}
	return nil
}
