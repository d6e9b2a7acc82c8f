// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	"github.com/ik5/audgrain/audio"
	"github.com/ik5/audgrain/internal/intpcm"
	"github.com/ik5/audgrain/internal/seekable"
)

// Decoder decodes uncompressed AIFF streams. go-audio needs to seek, so
// plain readers are buffered in memory.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := seekable.From(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAiffFile
	}

	return intpcm.NewSource(dec, format.SampleRate, format.NumChannels, bitDepth), nil
}
