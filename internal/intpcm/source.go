// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio integer PCM decoders to audio.Source.
package intpcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audgrain/utils"
)

// DefaultBufSize is reported by BufSize before the first read.
const DefaultBufSize = 4096

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM from a Reader to interleaved float32.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	done       bool
}

// NewSource wraps dec. bitDepth selects the integer scale.
func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return DefaultBufSize
}

// ReadSamples fills dst from the decoder. Once the decoder runs dry every
// later call returns io.EOF.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
			SourceBitDepth: s.bitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading pcm: %w", err)
	}

	n = utils.PCMToFloats(dst, s.intBuf.Data[:n], s.bitDepth)
	if n == 0 || err != nil {
		s.done = true
		return n, io.EOF
	}

	return n, nil
}
