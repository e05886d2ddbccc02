// Package errors is the error toolkit of the gateway: stdlib matching, pkg/errors
// stack traces, and helpers for the "not found is fine" checks that storage
// and push-channel callers repeat.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// IsAny reports whether err matches one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}

// Ignore returns nil when err matches one of targets and err otherwise.
// It lets a caller treat an expected sentinel, such as a missing record or
// a closed server, as success.
func Ignore(err error, targets ...error) error {
	if err == nil || IsAny(err, targets...) {
		return nil
	}

	return err
}

// Join returns an error that wraps the given errors, nil when all are nil.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. It returns nil for a nil err.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with a stack trace. It returns nil for a nil err.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
