// SPDX-License-Identifier: MIT

package scenario

import "errors"

var (
	// ErrSyntax wraps HCL parse and decode diagnostics.
	ErrSyntax = errors.New("scenario: invalid scenario file")
	// ErrBadVar indicates a --var value not of the form name=value.
	ErrBadVar = errors.New("scenario: variable must be name=value")
	// ErrBadSettings indicates an unusable settings block.
	ErrBadSettings = errors.New("scenario: invalid settings")
	// ErrBadComponent indicates a component block that cannot be built.
	ErrBadComponent = errors.New("scenario: invalid component")
	// ErrBadCoordinate indicates a coordinate that is not an [x, y] pair.
	ErrBadCoordinate = errors.New("scenario: coordinate must be [x, y]")
)
