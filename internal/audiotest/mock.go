// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic audio sources for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by sources built with NewFailingSource.
var ErrInjected = errors.New("audiotest: injected read failure")

// Waveform returns the value of one channel at frame index.
type Waveform func(frame, channel int) float32

// MockSource is a finite Source of generated frames. It implements
// audio.Source without importing it, so any package can use it in tests.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	read       int
	waveform   Waveform
	failAfter  int
	closed     bool
}

// NewMockSource returns a source producing frames frames of waveform.
func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
		failAfter:  -1,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource generates value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewSineSource generates the same sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource generates frame*step on every channel, which makes sample
// positions easy to recognize in assertions.
func NewRampSource(sampleRate, channels, frames int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) * step
	})
}

// NewFailingSource behaves like NewSilentSource for the first good frames and
// then returns ErrInjected.
func NewFailingSource(sampleRate, channels, good int) *MockSource {
	m := NewSilentSource(sampleRate, channels, good+1)
	m.failAfter = good
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() { m.read = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.read >= m.failAfter {
		return 0, ErrInjected
	}
	if m.read >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.read)
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.read)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.read+f, ch)
		}
	}
	m.read += frames

	n := frames * m.channels
	if m.read >= m.frames {
		return n, io.EOF
	}
	return n, nil
}
