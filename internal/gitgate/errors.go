package gitgate

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned before any git call is made when a
	// commit is requested without a message.
	ErrEmptyMessage = errors.New("commit message is required")

	// ErrNoChanges is returned when the working tree has nothing to
	// commit; the gate aborts without staging anything.
	ErrNoChanges = errors.New("nothing to commit")

	// ErrRejected is returned when the reviewer declines the commit.
	// The staged changes remain staged for a future retry.
	ErrRejected = errors.New("commit rejected by reviewer")

	// ErrConfirmationUnavailable is returned when confirmation is
	// required but no interactive channel exists. Confirmation is never
	// implicitly bypassed; unattended callers must pass Force.
	ErrConfirmationUnavailable = errors.New("confirmation required but no interactive channel is available (use --force to skip)")
)

// GateError surfaces an underlying git command failure, carrying the
// original diagnostic text verbatim. The gate never retries a failed
// destructive operation.
type GateError struct {
	Op     string
	Output string
	Err    error
}

func (e *GateError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("git %s failed: %v\n%s", e.Op, e.Err, e.Output)
	}
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *GateError) Unwrap() error { return e.Err }
