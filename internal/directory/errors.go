package directory

import (
	"errors"
	"fmt"
)

// RequestFailedError is a non-success, non-404 response from the directory
type RequestFailedError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface
func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("directory request failed: HTTP %d (%s)", e.StatusCode, e.URL)
}

// TransportError means the directory could not be reached or timed out
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("directory transport failed: %v", e.Err)
}

// Unwrap returns the underlying network error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the directory returned a body that is not a valid page
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("directory response malformed: %v", e.Err)
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsRequestFailed checks if an error is a RequestFailedError
func IsRequestFailed(err error) bool {
	var reqErr *RequestFailedError
	return errors.As(err, &reqErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// StatusCode returns the HTTP status carried by a RequestFailedError, or 0
func StatusCode(err error) int {
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
