package errcodes

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error is an error that is safe to show to API and CLI users. Retryable
// marks failures that are worth trying again later (rate limits, upstream
// outages).
type Error struct {
	HTTPCode  int
	Message   string
	Code      string
	Retryable bool
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	te.Retryable = err.Retryable
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// IsRetryable reports whether err is an *Error marked as retryable.
func IsRetryable(err error) bool {
	var e *Error
	if ok := errors.As(err, &e); ok {
		return e.Retryable
	}
	return false
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		HTTPCode: http.StatusNotFound,
		Message:  resource + " not found.",
		Code:     "not_found",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		HTTPCode: http.StatusUnsupportedMediaType,
		Message:  "Unsupported Media Type",
		Code:     "unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		HTTPCode: http.StatusUnprocessableEntity,
		Message:  fmt.Sprintf("Unknown Parameter %q", param),
		Code:     "unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		HTTPCode: http.StatusUnprocessableEntity,
		Message:  msg,
		Code:     "validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		HTTPCode: http.StatusUnprocessableEntity,
		Message:  msg,
		Code:     "validation_error",
	}
}

func MalformedPayload() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Malformed Payload",
		Code:     "malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		HTTPCode: http.StatusBadRequest,
		Message:  "Request body can't be empty.",
		Code:     "empty_request_body",
	}
}

// UpstreamStatus returns a 502 error for a non-2xx response from the catalog
// or one of its mirrors. Rate limits and server errors are retryable.
func UpstreamStatus(status int, url string) error {
	msg := fmt.Sprintf("HTTP %d - %s", status, url)
	if status == http.StatusTooManyRequests {
		msg = "Rate limited - wait before retrying"
	}
	return &Error{
		HTTPCode:  http.StatusBadGateway,
		Message:   msg,
		Code:      fmt.Sprintf("http_%d", status),
		Retryable: status == http.StatusTooManyRequests || status >= http.StatusInternalServerError,
	}
}

// UpstreamUnavailable returns a retryable 502 error for a request that never
// got a response (DNS failure, timeout, connection reset).
func UpstreamUnavailable(err error) error {
	msg := "Network request failed"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		HTTPCode:  http.StatusBadGateway,
		Message:   msg,
		Code:      "network_error",
		Retryable: true,
	}
}

// ParseError returns a 502 error for an upstream page that couldn't be
// understood.
func ParseError(msg string) error {
	return &Error{
		HTTPCode: http.StatusBadGateway,
		Message:  msg,
		Code:     "parse_error",
	}
}
