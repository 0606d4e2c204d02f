package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors the outbound layers translate driver errors into, so
// usecases can branch with errors.Is without importing driver packages.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict")
)

// Type is the coarse classification of an Error.
type Type int

const (
	// TypeServer marks infrastructure and programming failures.
	TypeServer Type = iota
	// TypeBusiness marks domain rule violations.
	TypeBusiness
	// TypeValidation marks rejected request input.
	TypeValidation
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code identifies the failure precisely enough to pick an HTTP status.
type Code int

const (
	// CodeInternal covers unexpected or unclassified failures.
	CodeInternal Code = iota
	// CodeInvalidFormat means the request body could not be decoded.
	CodeInvalidFormat
	// CodeInvalidInput means a decoded field failed validation.
	CodeInvalidInput
	// CodeNotFound means the addressed resource does not exist.
	CodeNotFound
	// CodeConflict means the request collides with existing state.
	CodeConflict
	// CodeTooManyRequest means the caller is being rate limited.
	CodeTooManyRequest
	// CodeUnauthorized means authentication is missing or wrong.
	CodeUnauthorized
	// CodeForbidden means the authenticated caller lacks access.
	CodeForbidden
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeConflict:
		return "ERROR_CODE_CONFLICT"
	case CodeTooManyRequest:
		return "ERROR_CODE_TOO_MANY_REQUESTS"
	case CodeUnauthorized:
		return "ERROR_CODE_UNAUTHORIZED"
	case CodeForbidden:
		return "ERROR_CODE_FORBIDDEN"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is the application error carried from usecases to the HTTP layer.
// The msg field is the only part shown to clients; any wrapped error is kept
// for logs and errors.Is checks.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	return e.errType.String()
}

// String renders every part of the error for logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(), e.code.String(), e.msg, e.err,
	)
}

// Msg returns the client-facing message.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the error classification.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Fields returns per-field validation messages when present.
func (e *Error) Fields() map[string]string {
	return e.fields
}

// Unwrap exposes the wrapped error to the errors package.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode translates the error code into an HTTP status. Invalid and
// malformed input both answer 400, which is what the public password-reset
// contract promises.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newError(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer wraps err as a server-type error with a generic client message.
func NewServer(err error) error {
	return newError(err, "Server error", TypeServer, CodeInternal)
}

// NewBusiness builds a business-type error carrying msg and code.
func NewBusiness(msg string, code Code) error {
	return newError(nil, msg, TypeBusiness, code)
}

// NewInvalidInput wraps a validation failure.
func NewInvalidInput(err error) error {
	return newError(err, "Validation error", TypeValidation, CodeInvalidInput)
}

// NewInvalidFormat reports an undecodable request body, optionally with a
// custom message.
func NewInvalidFormat(msgs ...string) error {
	if len(msgs) == 0 {
		return newError(nil, "Invalid request body", TypeValidation, CodeInvalidFormat)
	}
	return newError(nil, msgs[0], TypeValidation, CodeInvalidFormat)
}
