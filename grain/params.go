// SPDX-License-Identifier: EPL-2.0

package grain

import "math"

// Params holds the internal synthesis parameters in engine units.
type Params struct {
	// GrainSize is the grain length in samples, at most MaxGrainSize.
	GrainSize float64
	// GrainRate is the number of samples between grain triggers, at least 1.
	GrainRate float64
	// PlaybackRate is the playback cursor speed multiplier in [0, 2].
	PlaybackRate float64
	// WindowAlpha is the window fade fraction in [0.01, 1].
	WindowAlpha float64
}

// DefaultParams returns the parameters an Engine starts with before any
// setter is called.
func DefaultParams() Params {
	return Params{
		GrainSize:    441,
		GrainRate:    1323,
		PlaybackRate: 1,
		WindowAlpha:  0.8,
	}
}

// sanitize forces p inside the ranges the engine relies on.
func (p Params) sanitize() Params {
	if !(p.GrainSize >= 0) {
		p.GrainSize = 0
	}
	p.GrainSize = min(p.GrainSize, MaxGrainSize)

	if !(p.GrainRate >= 1) {
		p.GrainRate = 1
	}

	if !(p.PlaybackRate >= 0) {
		p.PlaybackRate = 0
	}
	p.PlaybackRate = min(p.PlaybackRate, maxPlaybackRate)

	if !(p.WindowAlpha >= minWindowAlpha) {
		p.WindowAlpha = minWindowAlpha
	}
	p.WindowAlpha = min(p.WindowAlpha, maxWindowAlpha)

	return p
}

// unit clamps a normalized control value into [0, 1]. NaN maps to 0.
func unit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// GrainSize maps a normalized control to a grain length in samples:
// linear from 10 ms to 100 ms at sampleRate, capped at MaxGrainSize.
func GrainSize(x, sampleRate float64) float64 {
	lo := minGrainSizeSeconds * sampleRate
	hi := maxGrainSizeSeconds * sampleRate
	return min(lo+unit(x)*(hi-lo), MaxGrainSize)
}

// GrainRate maps a normalized control to the interval between grain
// triggers in samples: exponential from 20 ms to 200 ms at sampleRate,
// never below one sample.
func GrainRate(x, sampleRate float64) float64 {
	lo := minGrainRateSeconds * sampleRate
	hi := maxGrainRateSeconds * sampleRate
	if !(lo > 0) {
		return 1
	}
	return max(lo*math.Pow(hi/lo, unit(x)), 1)
}

// PlaybackRate maps a normalized control to a speed multiplier in [0, 2].
func PlaybackRate(x float64) float64 {
	return unit(x) * maxPlaybackRate
}

// WindowAlpha maps a normalized control to a window fade fraction in
// [0.01, 1].
func WindowAlpha(x float64) float64 {
	return max(minWindowAlpha, unit(x)*maxWindowAlpha)
}
