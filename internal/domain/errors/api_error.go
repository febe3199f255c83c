package errors

import "fmt"

// APIError carries a failure returned by the commerce API. The gateway client
// builds one for every non-2xx response and passes it through unchanged;
// interpreting the status is the caller's job.
type APIError struct {
	Status int    // HTTP status code of the response
	Code   string // Business error code from the response envelope, if any
	Msg    string // Message from the response envelope, or the status text
	Detail string // Optional details from the response envelope
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Msg)
	}

	return fmt.Sprintf("api error %d: %s", e.Status, e.Msg)
}

// HTTPCode returns the HTTP status code.
func (e *APIError) HTTPCode() int { return e.Status }

// ErrorCode returns the business error code.
func (e *APIError) ErrorCode() string { return e.Code }

// Message returns the user-friendly error message.
func (e *APIError) Message() string { return e.Msg }

// Details returns detailed error information.
func (e *APIError) Details() string { return e.Detail }
