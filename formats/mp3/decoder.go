// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audgrain/audio"
	"github.com/ik5/audgrain/utils"
)

// go-mp3 always emits 16-bit little-endian stereo.
const (
	channels   = 2
	frameBytes = channels * 2
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// pending bytes of an incomplete frame at the front of buf
	pending int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// ReadSamples only ever returns whole stereo frames. Bytes of a frame split
// across decoder reads are carried over to the next call.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	frames := len(dst) / channels
	if frames == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	need := frames * frameBytes
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.pending])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.pending:])
	n += s.pending
	whole := n - n%frameBytes

	samples := whole / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.PCMToFloat32(int(v), 16)
	}
	s.pending = copy(s.buf, s.buf[whole:n])

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF):
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
}

// Decoder decodes MPEG-1/2 Layer III streams into stereo float32.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
