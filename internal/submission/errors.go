package submission

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	MessageAlreadySubscribed = "This email is already subscribed!"
	MessageAlreadyExists     = "This submission already exists."
	MessageSubmitFailed      = "Failed to submit the form. Please try again later."
	MessageUploadFailed      = "Failed to upload your resume. Please try again later."
)

var (
	ErrDuplicate   = errors.New("submission: duplicate")
	ErrPersistence = errors.New("submission: persistence failed")
)

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DuplicateError is a unique constraint violation on insert.
type DuplicateError struct {
	Message string
	Err     error
}

func (e *DuplicateError) Error() string {
	return e.Message
}

func (e *DuplicateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDuplicate}
	}
	return []error{ErrDuplicate, e.Err}
}

// PersistenceError is any other failure to store a submission. Message is
// safe to show to the visitor.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}

// Constraint text from the database wins over the generic message.
func newPersistenceError(err error) *PersistenceError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Message != "" {
		return &PersistenceError{Message: pgErr.Message, Err: err}
	}

	return &PersistenceError{Message: MessageSubmitFailed, Err: err}
}
