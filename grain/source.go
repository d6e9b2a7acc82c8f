// SPDX-License-Identifier: EPL-2.0

package grain

import (
	"math"

	"github.com/ik5/audgrain/audio"
)

var _ audio.Source = (*Engine)(nil)

// SampleRate implements audio.Source. It rounds the bound rate to whole Hz.
func (e *Engine) SampleRate() int { return int(math.Round(e.SampleRateHz())) }

// Channels implements audio.Source; the engine output is mono.
func (e *Engine) Channels() int { return 1 }

// BufSize implements audio.Source.
func (e *Engine) BufSize() int { return MaxGrainSize }

// ReadSamples implements audio.Source. The stream never ends, so dst is
// always filled completely.
func (e *Engine) ReadSamples(dst []float32) (int, error) {
	return e.Process(dst), nil
}

// Close implements audio.Source by releasing the voice pool.
func (e *Engine) Close() error {
	e.Teardown()
	return nil
}
