package errs

import (
	"errors"
	"net/http"
)

// Error is an application error that knows which HTTP status it maps to
type Error struct {
	Code    int
	Message string
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrNotAuthenticated = New(http.StatusUnauthorized, "you need to be logged in")
	ErrNotVenueManager  = New(http.StatusForbidden, "venue manager access required")
	ErrRequestInFlight  = New(http.StatusConflict, "a previous request is still in progress")
)

// StatusOf returns the HTTP status carried by err, or 0 when err is not an *Error
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}
