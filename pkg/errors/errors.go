package errors

import (
	"errors"
	"fmt"
)

// Closed set of failure kinds for client discovery. There is deliberately no
// catch-all kind: every failure this library produces is one of these.

// Kind classifies a discovery failure
type Kind string

const (
	// KindIO covers underlying platform errors: file-system failures while
	// reading the lock file, invalid UTF-8 in its content, and snapshot
	// acquisition failures.
	KindIO Kind = "io"

	// KindLockFileNotFound means the lock file path could not be resolved
	// from the matched process (missing executable path, or the install
	// layout did not have the expected depth).
	KindLockFileNotFound Kind = "lock_file_not_found"

	// KindAuthTokenNotFound means the auth token was absent from the
	// command line or the lock file.
	KindAuthTokenNotFound Kind = "auth_token_not_found"

	// KindPortNotFound means the port was absent from the command line or
	// the lock file, or its value did not parse as a 16-bit port.
	KindPortNotFound Kind = "port_not_found"

	// KindNotRunning means neither the client nor the game process was
	// found in the snapshot.
	KindNotRunning Kind = "not_running"
)

// Error is an immutable discovery failure. The lock-file flag is true iff the
// failure occurred while attempting the lock-file strategy; callers use it to
// decide whether retrying under the alternate strategy is worthwhile.
type Error struct {
	kind     Kind
	message  string
	lockFile bool
	cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the failure classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Reason returns the human-readable message.
func (e *Error) Reason() string {
	return e.message
}

// IsLockFileError reports whether the failure occurred while attempting the
// lock-file strategy.
func (e *Error) IsLockFileError() bool {
	return e.lockFile
}

// IsIOError reports whether the failure is an underlying platform error
// rather than a logical mismatch.
func (e *Error) IsIOError() bool {
	return e.kind == KindIO
}

// AsLockFileError returns a copy of e marked as a lock-file failure. The
// receiver is left untouched.
func (e *Error) AsLockFileError() *Error {
	c := *e
	c.lockFile = true
	return &c
}

// NewNotRunningError reports that neither target process was found.
func NewNotRunningError() *Error {
	return &Error{
		kind:    KindNotRunning,
		message: "neither the game or client process were running",
	}
}

// NewPortNotFoundError reports a missing or unusable port. When cause is
// non-nil (a failed port parse) its description becomes the message.
func NewPortNotFoundError(cause error) *Error {
	message := "port was not found"
	if cause != nil {
		message = cause.Error()
	}
	return &Error{
		kind:    KindPortNotFound,
		message: message,
		cause:   cause,
	}
}

// NewAuthTokenNotFoundError reports a missing auth token.
func NewAuthTokenNotFoundError() *Error {
	return &Error{
		kind:    KindAuthTokenNotFound,
		message: "auth token was not found",
	}
}

// NewLockFileNotFoundError reports that the lock file path could not be
// resolved. This can only happen inside the lock-file strategy, so the
// lock-file flag is preset.
func NewLockFileNotFoundError() *Error {
	return &Error{
		kind:     KindLockFileNotFound,
		message:  "did not follow the typical install structure",
		lockFile: true,
	}
}

// NewIOError wraps an underlying platform error. The message is the cause's
// description; call sites inside the lock-file strategy mark the result with
// AsLockFileError.
func NewIOError(cause error) *Error {
	return &Error{
		kind:    KindIO,
		message: cause.Error(),
		cause:   cause,
	}
}

// NewInvalidUTF8Error reports lock-file content that is not valid UTF-8.
// This can only happen inside the lock-file strategy, so the lock-file flag
// is preset.
func NewInvalidUTF8Error() *Error {
	return &Error{
		kind:     KindIO,
		message:  "stream did not contain valid UTF-8",
		lockFile: true,
	}
}

// Error checking helpers

func IsNotRunningError(err error) bool {
	var discErr *Error
	return errors.As(err, &discErr) && discErr.kind == KindNotRunning
}

func IsPortNotFoundError(err error) bool {
	var discErr *Error
	return errors.As(err, &discErr) && discErr.kind == KindPortNotFound
}

func IsAuthTokenNotFoundError(err error) bool {
	var discErr *Error
	return errors.As(err, &discErr) && discErr.kind == KindAuthTokenNotFound
}

func IsLockFileNotFoundError(err error) bool {
	var discErr *Error
	return errors.As(err, &discErr) && discErr.kind == KindLockFileNotFound
}

func IsIOError(err error) bool {
	var discErr *Error
	return errors.As(err, &discErr) && discErr.kind == KindIO
}

// IsLockFileError reports whether err is a discovery failure that occurred
// while attempting the lock-file strategy.
func IsLockFileError(err error) bool {
	var discErr *Error
	return errors.As(err, &discErr) && discErr.lockFile
}
