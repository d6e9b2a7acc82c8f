// SPDX-License-Identifier: EPL-2.0

package grain

import "math"

// Amplitude returns the grain window gain in [0, 1] at phase samples into a
// grain of grainSize samples.
//
// The window is a Tukey-style shape: a raised-cosine rise over the first
// alpha*grainSize/2 samples, a flat sustain at 1, and a mirrored raised-cosine
// fall that reaches 0 exactly at grainSize. alpha = 1 gives a full Hann window
// with no plateau; alpha close to 0 approaches a rectangular window.
// Phases at or beyond grainSize return 0.
func Amplitude(phase int, grainSize, alpha float64) float64 {
	p := float64(phase)
	if p >= grainSize {
		return 0
	}

	width := alpha * grainSize
	fadeIn := width / 2
	fadeOutStart := grainSize - fadeIn

	switch {
	case p < fadeIn:
		return 0.5 * (1 - math.Cos(2*math.Pi*p/width))
	case p <= fadeOutStart:
		return 1
	default:
		fadeOutPhase := p - grainSize + fadeIn
		return 0.5 * (1 + math.Cos(2*math.Pi*fadeOutPhase/width))
	}
}
