package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrPrecondition indicates that an operation was attempted against a record
// whose current state forbids it (for example finalizing a reconciliation
// that still has unapproved line items, or approving a terminal one).
var ErrPrecondition = errors.New("precondition failed")

// ErrDependency indicates that a record-store fetch or write failed. The
// caller decides whether to retry; no partial-state rollback is attempted
// beyond the failing unit of work.
var ErrDependency = errors.New("record store dependency error")

// ParseError reports a malformed value on a single record. It degrades only
// the record it belongs to; batch processing continues.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AuditWriteWarning signals that a business mutation was committed but its
// audit log entry could not be appended. The mutation stands; the caller must
// not report the operation as fully successful.
type AuditWriteWarning struct {
	Action string
	Err    error
}

func (w *AuditWriteWarning) Error() string {
	return fmt.Sprintf("audit write failed after committed mutation (%s): %v", w.Action, w.Err)
}

func (w *AuditWriteWarning) Unwrap() error { return w.Err }

// AppError carries an HTTP-ish status code alongside a message and cause.
// Repositories use it to classify infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
