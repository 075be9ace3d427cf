// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies failures for status mapping and for clients matching on the wire name
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transient errors where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is for rate limiting
	ErrorCodeTooManyRequests

	// ErrorCodeUnauthorized is for missing, expired or unverifiable tokens
	ErrorCodeUnauthorized

	// ErrorCodeValidation is for bodies that decode but fail validation
	ErrorCodeValidation

	// ErrorCodeJSON is for bodies that do not decode
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeFaithBlocked is for faith-exclusive content denied by the faith gate
	ErrorCodeFaithBlocked

	// ErrorCodePolicyRejected is for content that exists but failed the content policy
	ErrorCodePolicyRejected
)

var codeNames = [...]string{
	ErrorCodeUnknown:         "UNKNOWN",
	ErrorCodePanic:           "PANIC",
	ErrorCodeUnavailable:     "UNAVAILABLE",
	ErrorCodeTooManyRequests: "TOO_MANY_REQUESTS",
	ErrorCodeUnauthorized:    "UNAUTHORIZED",
	ErrorCodeValidation:      "VALIDATION",
	ErrorCodeJSON:            "JSON",
	ErrorCodeNotFound:        "NOT_FOUND",
	ErrorCodeFaithBlocked:    "FAITH_BLOCKED",
	ErrorCodePolicyRejected:  "POLICY_REJECTED",
}

var statusOf = [...]int{
	ErrorCodeUnknown:         http.StatusInternalServerError,
	ErrorCodePanic:           http.StatusInternalServerError,
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeTooManyRequests: http.StatusTooManyRequests,
	ErrorCodeUnauthorized:    http.StatusUnauthorized,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeFaithBlocked:    http.StatusForbidden,
	ErrorCodePolicyRejected:  http.StatusUnprocessableEntity,
}

// String returns the stable wire name of the code
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return codeNames[ErrorCodeUnknown]
}

// MarshalText renders the code by name
func (c ErrorCode) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText parses a wire name back into a code; unknown names map to ErrorCodeUnknown
func (c *ErrorCode) UnmarshalText(b []byte) error {
	*c = ErrorCodeUnknown
	for k, v := range codeNames {
		if v == string(b) {
			*c = ErrorCode(k)
			break
		}
	}
	return nil
}

// HTTPStatusCode turns an ErrorCode into an http status code; out of range codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if int(c) < len(statusOf) {
		return statusOf[c]
	}
	return http.StatusInternalServerError
}

// Error carries a machine code, a developer message and the wrapped cause.
// hint is a user facing remedy and field names the offending input
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	hint  string
	field string
}

// Wire is the JSON-serializable form of an *Error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
	Field   string    `json:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Hint returns the user facing hint, if any
func (e *Error) Hint() string { return e.hint }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire {
	return Wire{Code: e.code, Message: e.msg, Hint: e.hint, Field: e.field}
}

// WireFrom converts any error into a Wire; foreign errors become UNKNOWN with their text
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithField returns a copy of err naming the offending field; foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithHint returns a copy of err carrying a remedy; foreign errors pass through
func WithHint(err error, hint string) error {
	if e, ok := As(err); ok {
		c := *e
		c.hint = hint
		return &c
	}
	return err
}

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unauthorizedf returns an unauthorized error
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

// FaithBlocked returns a faith gate denial carrying the remedy hint
func FaithBlocked(hint string) error {
	return &Error{code: ErrorCodeFaithBlocked, msg: "faith content blocked", hint: hint}
}

// PolicyRejectedf returns a content policy rejection
func PolicyRejectedf(format string, a ...any) error {
	return Newf(ErrorCodePolicyRejected, format, a...)
}

// TooManyRequestsf returns a rate limit error
func TooManyRequestsf(format string, a ...any) error {
	return Newf(ErrorCodeTooManyRequests, format, a...)
}

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// Retryable reports whether an upstream call that failed with err is worth repeating
func Retryable(err error) bool {
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	default:
		return false
	}
}
