// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync/atomic"

	"github.com/ik5/audgrain/audio"
	"github.com/tphakala/simd/f32"
)

const sampleBytes = 4

// Stream is an io.Reader of interleaved float32 little-endian PCM pulled
// from an audio.Source. It is what the output device reads from.
type Stream struct {
	src      audio.Source
	channels int
	gain     atomic.Uint32
	buf      []float32
	eof      bool
	frames   atomic.Uint64
}

// NewStream reads from src, which must already have the device channel
// count (see audio.NewFanOutSource).
func NewStream(src audio.Source, gain float32) *Stream {
	s := &Stream{
		src:      src,
		channels: max(src.Channels(), 1),
		buf:      make([]float32, 4096),
	}
	s.SetGain(gain)
	return s
}

// SetGain changes the output gain. It may be called while the device is
// reading.
func (s *Stream) SetGain(g float32) { s.gain.Store(math.Float32bits(g)) }

func (s *Stream) Gain() float32 { return math.Float32frombits(s.gain.Load()) }

// Frames reports how many frames have been handed to the device.
func (s *Stream) Frames() uint64 { return s.frames.Load() }

// Read fills p with whole frames. When the source ends early the rest of
// the frame block is silence, and the following call returns io.EOF.
func (s *Stream) Read(p []byte) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	frameBytes := s.channels * sampleBytes
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	want := frames * s.channels
	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	buf := s.buf[:want]

	got := 0
	for got < want {
		n, err := s.src.ReadSamples(buf[got:])
		got += n
		if errors.Is(err, io.EOF) {
			s.eof = true
			break
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
	}
	clear(buf[got:])

	if g := s.Gain(); g != 1 {
		f32.Scale(buf, buf, g)
	}

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*sampleBytes:], math.Float32bits(v))
	}
	s.frames.Add(uint64(frames))

	return want * sampleBytes, nil
}
