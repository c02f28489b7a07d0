// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"fmt"

	"github.com/pkg/errors"
)

// FormatResolutionError is returned when the format of a file cannot be determined.
// Resolution never falls back to a default format.
type FormatResolutionError struct {
	// Path of the file being resolved.
	Path string

	// Container family detected, ContainerUnknown if not even that could be determined.
	Container Container

	// Reason is a human-readable description of why the resolution failed.
	Reason string

	// Err is the underlying error, if any (e.g. a failure to open or parse the file).
	Err error
}

// Error implements error.
func (e *FormatResolutionError) Error() string {
	msg := fmt.Sprintf("failed to resolve the format of %q", e.Path)
	if e.Container != ContainerUnknown {
		msg = fmt.Sprintf("%s (%s container)", msg, e.Container)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *FormatResolutionError) Unwrap() error {
	return e.Err
}

// IsFormatResolutionError returns whether err is or wraps a *FormatResolutionError.
func IsFormatResolutionError(err error) bool {
	var rErr *FormatResolutionError
	return errors.As(err, &rErr)
}
