package services

import (
	"errors"
	"fmt"

	"github.com/baharkarakas/accounts-backend/internal/api/validate"
)

// Kind is the client-facing category of a service failure.
type Kind string

const (
	KindUnauthenticated   Kind = "unauthenticated"
	KindInvalidInput      Kind = "invalid_input"
	KindConflict          Kind = "conflict"
	KindNotFound          Kind = "not_found"
	KindInvalidCredential Kind = "invalid_credential"
	KindInternal          Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind so callers can write errors.Is(err, services.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrUnauthenticated   = &Error{Kind: KindUnauthenticated, Message: "Unauthorized"}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput, Message: "Invalid input"}
	ErrConflict          = &Error{Kind: KindConflict, Message: "Account already exists"}
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrInvalidCredential = &Error{Kind: KindInvalidCredential, Message: "Current password is incorrect"}
	ErrInternal          = &Error{Kind: KindInternal, Message: "Internal server error"}
)

func invalidInput(errs validate.Errs) error {
	return &Error{Kind: KindInvalidInput, Message: ErrInvalidInput.Message, Fields: errs.Fields(), Err: errs}
}

func invalidInputMsg(msg string) error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func notFound(err error) error {
	return &Error{Kind: KindNotFound, Message: ErrNotFound.Message, Err: err}
}

func conflict(err error) error {
	return &Error{Kind: KindConflict, Message: ErrConflict.Message, Err: err}
}

func internal(op string, err error) error {
	return &Error{Kind: KindInternal, Message: ErrInternal.Message, Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf reports the Kind of err, defaulting to KindInternal for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}
