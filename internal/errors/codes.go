package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                Code = "OK"
	CodeCanceled          Code = "CANCELED"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded  Code = "DEADLINE_EXCEEDED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeInternal          Code = "INTERNAL"
	CodeUnavailable       Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeInternal:
		return http.StatusInternalServerError
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
