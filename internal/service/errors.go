package service

import "fmt"

// Domain errors carry marker methods so controllers can map them to HTTP
// statuses without depending on concrete types:
//
//	if _, ok := err.(interface{ NotFound() }); ok { ... }
//
// Validation failures (not-found, permission, invalid-state, already-completed,
// no-active-attempt) surface to the caller. ConflictError surfaces only for
// duplicate enrollment; a lost attempt-creation race is absorbed by re-reading
// the winner's row instead.

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Resource) }
func (e *NotFoundError) NotFound()     {}

type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string     { return e.Reason }
func (e *PermissionError) PermissionDenied() {}

type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string { return e.Reason }
func (e *InvalidStateError) InvalidState() {}

type AlreadyCompletedError struct {
	Reason string
}

func (e *AlreadyCompletedError) Error() string     { return e.Reason }
func (e *AlreadyCompletedError) AlreadyCompleted() {}

type NoActiveAttemptError struct {
	Reason string
}

func (e *NoActiveAttemptError) Error() string    { return e.Reason }
func (e *NoActiveAttemptError) NoActiveAttempt() {}

type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }
func (e *ConflictError) Conflict()     {}
