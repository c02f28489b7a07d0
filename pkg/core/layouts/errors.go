// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"fmt"

	"github.com/pkg/errors"
)

// PreconditionError is raised when a layout query is made on an Unknown (or otherwise invalid) layout.
//
// It is a programming error: the caller should have resolved the layout to a concrete value before
// indexing any array. Queries panic with it (wrapped with a stack trace), constructors and Bind return it.
type PreconditionError struct {
	// Layout is the string representation of the offending layout value, e.g. "UNKNOWN" or "HLayout(17)".
	Layout string

	// Query is the name of the method that was called, e.g. "HLayout.TimeAxis".
	Query string
}

// Error implements error.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s called on layout %s: it must be resolved to a concrete layout before indexing",
		e.Query, e.Layout)
}

// IsPreconditionError returns whether err is or wraps a *PreconditionError.
func IsPreconditionError(err error) bool {
	var pErr *PreconditionError
	return errors.As(err, &pErr)
}

func newPreconditionError(layout fmt.Stringer, query string) error {
	return errors.WithStack(&PreconditionError{Layout: layout.String(), Query: query})
}

// throwPrecondition panics with a *PreconditionError wrapped with the stack.
// Use exceptions.TryCatch[error] to recover it.
func throwPrecondition(layout fmt.Stringer, query string) {
	panic(newPreconditionError(layout, query))
}
