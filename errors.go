// SPDX-License-Identifier: EPL-2.0

package audgrain

import "errors"

var (
	// ErrEmptySource indicates a source that produced no samples, so there
	// is nothing for the engine to granulate.
	ErrEmptySource = errors.New("source produced no samples")

	// ErrInvalidSampleRate indicates a source reporting a sample rate below 1 Hz.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
