package errors

import (
	"errors"
	"strings"
)

// Kind classifies a failure so callers can branch on it without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthenticated
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Error is the tagged error returned by the auth flows and the access gate.
type Error struct {
	Kind    Kind
	Message string
	// Details holds every violation for KindValidation.
	Details []string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		msg += ": " + strings.Join(e.Details, "; ")
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrEmailAlreadyInUse  = &Error{Kind: KindConflict, Message: "email already registered"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "email not found"}
	ErrPasswordRequired   = &Error{Kind: KindBadRequest, Message: "password is required"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthenticated, Message: "incorrect password"}

	ErrAuthHeaderMissing = &Error{Kind: KindUnauthenticated, Message: "authorization header missing"}
	ErrInvalidAuthFormat = &Error{Kind: KindUnauthenticated, Message: "invalid authorization format"}
	ErrInvalidToken      = &Error{Kind: KindUnauthenticated, Message: "invalid token"}
	ErrTokenExpired      = &Error{Kind: KindUnauthenticated, Message: "token expired"}
)

// Validation builds a KindValidation error carrying all violations.
func Validation(details []string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Details: details}
}

// Internal wraps an unexpected failure. The wrapped error is for server-side logs only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf reports the Kind of err. Untagged errors are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// DetailsOf returns the validation details of err, if any.
func DetailsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
