// SPDX-License-Identifier: EPL-2.0

package grain

import (
	"math"
	"sync/atomic"
)

// State is a diagnostic snapshot of the engine counters.
type State struct {
	GlobalIndex  uint64
	Position     float64
	NextVoice    int
	ActiveVoices int
}

// Engine is a granular synthesizer bound to one source buffer. Instances
// share nothing, so any number of them can run side by side.
type Engine struct {
	buf  Buffer
	pool *Pool

	// sampleRate holds float64 bits; read by the setters, written by Setup.
	sampleRate atomic.Uint64
	params     atomic.Pointer[Params]

	globalIndex uint64
	position    float64
}

// NewEngine returns an engine with DefaultParams and no source buffer.
// Step returns silence until Setup binds one.
func NewEngine() *Engine {
	e := &Engine{pool: newPool()}
	e.sampleRate.Store(math.Float64bits(DefaultSampleRate))

	p := DefaultParams()
	e.params.Store(&p)

	return e
}

// Setup binds the engine to samples at sampleRate and resets all counters
// and voices. The slice is borrowed, not copied: it must outlive the engine
// and stay unmodified. A nil or empty slice makes Step return silence.
func (e *Engine) Setup(sampleRate float64, samples []float32) {
	e.sampleRate.Store(math.Float64bits(sampleRate))
	e.buf = NewBuffer(samples)
	e.globalIndex = 0
	e.position = 0

	if e.pool == nil {
		e.pool = newPool()
	}
	e.pool.reset()
}

// Teardown releases the voice pool. It is safe to call more than once;
// Step returns silence until the next Setup.
func (e *Engine) Teardown() {
	e.pool = nil
}

// Step advances the engine by one tick and returns one output sample.
func (e *Engine) Step() float32 {
	if e.pool == nil || e.buf.Len() == 0 {
		return 0
	}

	p := e.params.Load()

	e.position += p.PlaybackRate
	e.pool.tick(e.buf, e.globalIndex, p.GrainRate, p.GrainSize, e.position)
	out := e.pool.render(e.globalIndex, p.GrainSize, p.WindowAlpha)
	e.globalIndex++

	if e.position >= float64(e.buf.Len()) {
		e.wrap()
	}

	return out
}

// Process fills dst with consecutive output samples and returns len(dst).
func (e *Engine) Process(dst []float32) int {
	for i := range dst {
		dst[i] = e.Step()
	}
	return len(dst)
}

// wrap is the hard reset performed when the playback cursor reaches the end
// of the source buffer.
func (e *Engine) wrap() {
	e.globalIndex = 0
	e.position = 0
	e.pool.silence()
}

// SampleRateHz returns the rate the parameter mapping is evaluated at.
func (e *Engine) SampleRateHz() float64 {
	return math.Float64frombits(e.sampleRate.Load())
}

// Params returns the parameters the next tick will use.
func (e *Engine) Params() Params {
	return *e.params.Load()
}

// SetParams replaces all four parameters at once. Out-of-range values are
// clamped.
func (e *Engine) SetParams(p Params) {
	p = p.sanitize()
	e.params.Store(&p)
}

// update publishes a modified copy of the current parameters. The
// compare-and-swap keeps concurrent setters from losing each other's writes.
func (e *Engine) update(fn func(*Params)) {
	for {
		old := e.params.Load()
		next := *old
		fn(&next)
		if e.params.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetGrainSize sets the grain length from a normalized control in [0, 1].
func (e *Engine) SetGrainSize(x float64) {
	v := GrainSize(x, e.SampleRateHz())
	e.update(func(p *Params) { p.GrainSize = v })
}

// SetGrainRate sets the trigger interval from a normalized control in [0, 1].
func (e *Engine) SetGrainRate(x float64) {
	v := GrainRate(x, e.SampleRateHz())
	e.update(func(p *Params) { p.GrainRate = v })
}

// SetPlaybackRate sets the playback speed from a normalized control in [0, 1].
func (e *Engine) SetPlaybackRate(x float64) {
	v := PlaybackRate(x)
	e.update(func(p *Params) { p.PlaybackRate = v })
}

// SetWindowAlpha sets the window shape from a normalized control in [0, 1].
func (e *Engine) SetWindowAlpha(x float64) {
	v := WindowAlpha(x)
	e.update(func(p *Params) { p.WindowAlpha = v })
}

// State returns the current counters. It must be called from the goroutine
// that drives Step.
func (e *Engine) State() State {
	s := State{
		GlobalIndex: e.globalIndex,
		Position:    e.position,
	}
	if e.pool != nil {
		s.NextVoice = e.pool.next
		s.ActiveVoices = e.pool.activeCount()
	}
	return s
}
