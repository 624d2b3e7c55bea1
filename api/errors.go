package api

import (
	"net/http"
)

// ErrorResponse is an error reported by the service.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// IsTooLarge reports whether the service rejected the input for its size.
func (e *ErrorResponse) IsTooLarge() bool {
	return e.StatusCode == http.StatusRequestEntityTooLarge
}

// IsTooDeep reports whether the service rejected the input for its nesting.
func (e *ErrorResponse) IsTooDeep() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}
