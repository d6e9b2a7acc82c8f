// SPDX-License-Identifier: EPL-2.0

package audgrain

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a block of rendered samples.
type Stats struct {
	Samples int
	Peak    float64
	RMS     float64
	Mean    float64
	// Clipped counts samples outside [-1, 1], which a PCM writer will clamp.
	Clipped int
}

// Analyze measures samples. An empty block returns zero Stats.
func Analyze(samples []float32) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	x := make([]float64, len(samples))
	clipped := 0
	for i, v := range samples {
		x[i] = float64(v)
		if v > 1 || v < -1 {
			clipped++
		}
	}

	return Stats{
		Samples: len(x),
		Peak:    math.Max(floats.Max(x), -floats.Min(x)),
		RMS:     floats.Norm(x, 2) / math.Sqrt(float64(len(x))),
		Mean:    stat.Mean(x, nil),
		Clipped: clipped,
	}
}

// Merge combines the statistics of two blocks as if they had been analyzed
// together.
func (s Stats) Merge(o Stats) Stats {
	n := s.Samples + o.Samples
	if n == 0 {
		return Stats{}
	}

	ws := float64(s.Samples) / float64(n)
	wo := float64(o.Samples) / float64(n)

	return Stats{
		Samples: n,
		Peak:    math.Max(s.Peak, o.Peak),
		RMS:     math.Sqrt(ws*s.RMS*s.RMS + wo*o.RMS*o.RMS),
		Mean:    ws*s.Mean + wo*o.Mean,
		Clipped: s.Clipped + o.Clipped,
	}
}

// PeakDBFS is the peak level in dB relative to full scale.
func (s Stats) PeakDBFS() float64 {
	return 20 * math.Log10(s.Peak)
}
