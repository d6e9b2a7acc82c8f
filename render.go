// SPDX-License-Identifier: EPL-2.0

package audgrain

import (
	"github.com/ik5/audgrain/audio"
	"github.com/ik5/audgrain/grain"
	"github.com/tphakala/simd/f32"
)

// Renderer pulls blocks from an Engine for offline output. Each block is
// scaled by the gain and copied to every output channel.
type Renderer struct {
	engine   *grain.Engine
	channels int
	gain     float32
	mono     []float32
}

func NewRenderer(e *grain.Engine, channels int, gain float32) (*Renderer, error) {
	if channels < 1 {
		return nil, audio.ErrInvalidChannels
	}

	return &Renderer{
		engine:   e,
		channels: channels,
		gain:     gain,
		mono:     make([]float32, grain.MaxGrainSize),
	}, nil
}

func (r *Renderer) Channels() int    { return r.channels }
func (r *Renderer) Gain() float32    { return r.gain }
func (r *Renderer) SetGain(g float32) { r.gain = g }

// Render fills dst with interleaved frames, one engine step per frame, and
// returns the number of frames. len(dst) must be a multiple of the channel
// count.
func (r *Renderer) Render(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	frames := len(dst) / r.channels
	if cap(r.mono) < frames {
		r.mono = make([]float32, frames)
	}
	mono := r.mono[:frames]

	r.engine.Process(mono)
	if r.gain != 1 {
		f32.Scale(mono, mono, r.gain)
	}

	return audio.FanOut(dst, mono, r.channels)
}
