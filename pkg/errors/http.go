package errors

import "fmt"

// HTTPError is an error that carries the status code delivery layers should answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose business code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
