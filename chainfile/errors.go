// SPDX-License-Identifier: MIT

package chainfile

import "errors"

// Sentinel errors for chain documents.
var (
	// ErrUnknownFormat is returned for an unsupported extension or Format value.
	ErrUnknownFormat = errors.New("chainfile: unknown format")

	// ErrLabelCount is returned when States is non-empty but its length
	// differs from the number of weight rows.
	ErrLabelCount = errors.New("chainfile: state label count does not match weights")

	// ErrDecode wraps syntax errors from the underlying decoder.
	ErrDecode = errors.New("chainfile: decode failed")
)
