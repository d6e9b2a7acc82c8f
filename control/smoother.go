// SPDX-License-Identifier: EPL-2.0

package control

import "math"

// DefaultCoefficient is the pole of the knob smoother. Each update keeps 95%
// of the previous value.
const DefaultCoefficient = 0.95

// Smoother is a one-pole low-pass filter: s = c*s + (1-c)*raw.
type Smoother struct {
	coef  float64
	value float64
}

// NewSmoother returns a smoother starting at initial. coef is clamped to
// [0, 1]; 0 passes input straight through and 1 never moves.
func NewSmoother(coef, initial float64) Smoother {
	switch {
	case coef < 0 || math.IsNaN(coef):
		coef = 0
	case coef > 1:
		coef = 1
	}
	return Smoother{coef: coef, value: initial}
}

// Next feeds one raw reading and returns the smoothed value.
func (s *Smoother) Next(raw float64) float64 {
	s.value = s.coef*s.value + (1-s.coef)*raw
	return s.value
}

func (s *Smoother) Value() float64 { return s.value }

// Reset jumps straight to v.
func (s *Smoother) Reset(v float64) { s.value = v }
