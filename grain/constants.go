// SPDX-License-Identifier: EPL-2.0

package grain

const (
	// MaxVoices is the number of grain voices that can sound at once.
	MaxVoices = 16

	// MaxGrainSize is the capacity, in samples, of a single voice table.
	MaxGrainSize = 4410

	// Attenuation is the fixed headroom gain applied to the voice sum
	// whenever at least one voice is active.
	Attenuation = 1.0 / 3.0

	// DefaultSampleRate is used by the parameter mapping until Setup binds
	// a real rate.
	DefaultSampleRate = 44100.0
)

// Parameter mapping ranges, as fractions of the sample rate.
const (
	minGrainSizeSeconds = 0.01
	maxGrainSizeSeconds = 0.1

	minGrainRateSeconds = 0.02
	maxGrainRateSeconds = 0.2

	maxPlaybackRate = 2.0

	minWindowAlpha = 0.01
	maxWindowAlpha = 1.0
)
