package booking

import (
	"errors"
	"fmt"
)

// Engine error codes. NotFound and InvalidSchedule are terminal for the
// request; Unavailable means the storage-level overlap guard rejected the
// commit; PersistenceError after passed validation means the caller must
// retry the whole validate-then-commit sequence (never retried
// automatically, to avoid duplicate bookings).
const (
	CodeNotFound         = "notFound"
	CodeInvalidSchedule  = "invalidSchedule"
	CodeUnavailable      = "unavailable"
	CodeNotAuthenticated = "notAuthenticated"
	CodePersistence      = "persistenceError"
)

// EngineError is a typed failure from the availability engine. Message is
// the caller-facing reason, surfaced verbatim.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) *EngineError {
	return &EngineError{Code: CodeNotFound, Message: msg}
}

func NewInvalidScheduleError(msg string) *EngineError {
	return &EngineError{Code: CodeInvalidSchedule, Message: msg}
}

func NewUnavailableError(msg string) *EngineError {
	return &EngineError{Code: CodeUnavailable, Message: msg}
}

func NewNotAuthenticatedError(msg string) *EngineError {
	return &EngineError{Code: CodeNotAuthenticated, Message: msg}
}

func NewPersistenceError(msg string) *EngineError {
	return &EngineError{Code: CodePersistence, Message: msg}
}

// AsEngineError unwraps err to an EngineError if there is one.
func AsEngineError(err error) (*EngineError, bool) {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}
