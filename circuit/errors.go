// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrBadDimensions indicates a non-positive board width or height.
	ErrBadDimensions = errors.New("circuit: width and height must be > 0")
	// ErrOutOfBounds indicates a cell outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("circuit: cell out of bounds")
	// ErrOverlap indicates a body placed on an occupied or linked cell.
	ErrOverlap = errors.New("circuit: component overlaps another component")
	// ErrPinBlocked indicates a pin terminating inside another component's body.
	ErrPinBlocked = errors.New("circuit: pin blocked by another component")
	// ErrSlotTaken indicates a link slot that already holds a different link.
	ErrSlotTaken = errors.New("circuit: link slot already in use")
	// ErrNotAdjacent indicates joint endpoints that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("circuit: cells are not orthogonally adjacent")
	// ErrBodyCell indicates a wire joint touching a component body.
	ErrBodyCell = errors.New("circuit: joint touches a component body")
	// ErrNilElectronic indicates a nil component argument.
	ErrNilElectronic = errors.New("circuit: electronic is nil")
	// ErrDuplicateElectronic indicates an identity that is already attached.
	ErrDuplicateElectronic = errors.New("circuit: electronic already attached")
	// ErrElectronicNotFound indicates an identity that is not attached.
	ErrElectronicNotFound = errors.New("circuit: electronic not found")
	// ErrJointNotFound indicates RemoveJoint on a slot without a wire.
	ErrJointNotFound = errors.New("circuit: no joint between cells")
	// ErrUnknownPin indicates a pin name the node's component does not declare.
	ErrUnknownPin = errors.New("circuit: unknown pin")
	// ErrPinConnected indicates a pin that already belongs to a different edge.
	ErrPinConnected = errors.New("circuit: pin already connected to another edge")
)
