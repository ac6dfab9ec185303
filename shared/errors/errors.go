package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorWithStatusCode carries the HTTP status a LearnSphere endpoint answered with.
// Typed client calls and request validation return it; raw Get/Post never do.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// New builds an ErrorWithStatusCode with a formatted message.
func New(statusCode int, format string, args ...any) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: fmt.Sprintf(format, args...), StatusCode: statusCode}
}

// StatusCode extracts the status from err, defaulting to 500 for plain errors
// and 0 for nil.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var e *ErrorWithStatusCode
	if stderrors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
