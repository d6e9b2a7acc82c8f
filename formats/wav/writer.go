// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audgrain/utils"
)

// Writer encodes interleaved float32 samples as integer PCM WAV. The header
// sizes are patched on Close, so the destination must be seekable.
type Writer struct {
	enc      *gowav.Encoder
	buf      *goaudio.IntBuffer
	bitDepth int
	written  int
}

// NewWriter starts a WAV stream on w. bitDepth must be 16, 24 or 32.
func NewWriter(w io.WriteSeeker, sampleRate, bitDepth, channels int) (*Writer, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	return &Writer{
		enc: gowav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
		bitDepth: bitDepth,
	}, nil
}

// Write appends interleaved samples, clamping them to [-1, 1].
func (w *Writer) Write(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]
	utils.FloatsToPCM(w.buf.Data, samples, w.bitDepth)

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav pcm: %w", err)
	}
	w.written += len(samples)

	return nil
}

// Samples reports how many samples (not frames) have been written.
func (w *Writer) Samples() int { return w.written }

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
