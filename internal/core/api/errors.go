package api

import (
	"errors"
	"fmt"
)

// maxErrorBody caps how much of a failed response body is kept for logs.
const maxErrorBody = 512

// StatusError is returned when the backend answers with a non-2xx status.
// The body is never interpreted; Body holds a truncated excerpt for logs.
type StatusError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s %s: unexpected status %d", e.Op, e.Method, e.URL, e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// StatusError (a transport or decode failure).
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
