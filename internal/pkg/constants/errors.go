package constants

import "net/http"

// CodedError is an error that carries the HTTP status code it should be
// reported with. The api error handler unwraps chains looking for one.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound          = NewCodedError(http.StatusNotFound, "not found")
	ErrBadRequest          = NewCodedError(http.StatusBadRequest, "bad request")
	ErrUnknownDomain       = NewCodedError(http.StatusBadRequest, "unknown metric domain")
	ErrUpstreamUnavailable = NewCodedError(http.StatusBadGateway, "record source unavailable")
)
