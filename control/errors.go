// SPDX-License-Identifier: EPL-2.0

package control

import "errors"

var (
	// ErrUnknownKnob indicates a knob name that is not one of the four controls.
	ErrUnknownKnob = errors.New("unknown knob")

	// ErrInvalidSweep indicates a malformed sweep description.
	ErrInvalidSweep = errors.New("invalid sweep")

	// ErrInvalidInterval indicates a non-positive control interval.
	ErrInvalidInterval = errors.New("control interval must be positive")
)
