// SPDX-License-Identifier: MIT

package electronic

import "errors"

var (
	// ErrUnknownKind indicates a kind that is not present in the catalog.
	ErrUnknownKind = errors.New("electronic: unknown kind")
	// ErrBadKind indicates an invalid kind definition passed to DefineKind.
	ErrBadKind = errors.New("electronic: invalid kind definition")
	// ErrUnknownPin indicates a pin name the component's kind does not declare.
	ErrUnknownPin = errors.New("electronic: unknown pin")
)
