// Package errors is the error helper used by infrastructure code: stdlib
// matching plus pkg/errors stack annotation, behind one import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error with the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether err or anything it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap adds message and a stack trace to err. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records the caller's stack on err. A nil err stays nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
