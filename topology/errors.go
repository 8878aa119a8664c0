// Package topology sentinel errors.
//
// Error policy (mirrors the rest of the module):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   - Generators attach context via fmt.Errorf("%s: ...: %w", method, ...)
//     and never panic at runtime; panics are confined to option
//     constructors receiving programmer errors (nil hooks).
package topology

import "errors"

var (
	// ErrTooFewNodes indicates a size parameter below the structural minimum
	// for the requested family (ring n < 1, grid rows/cols < 1).
	ErrTooFewNodes = errors.New("topology: parameter too small")

	// ErrNilParams indicates Build was called with a nil Params value.
	ErrNilParams = errors.New("topology: nil params")

	// ErrUnknownKind indicates a parameter record named a topology kind
	// outside ring|mesh|torus|hypercube.
	ErrUnknownKind = errors.New("topology: unknown topology kind")

	// ErrBadRecord indicates a parameter record that could not be decoded.
	ErrBadRecord = errors.New("topology: malformed parameter record")
)
