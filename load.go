// SPDX-License-Identifier: EPL-2.0

package audgrain

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audgrain/audio"
)

const defaultBufferSize = 4096

// LoadMono reads src to the end, averaging its channels, and returns the
// mono samples with their sample rate. This is the engine's source buffer.
//
// A source that yields nothing fails with ErrEmptySource, which callers
// treat as a setup failure. bufferSize is the read size in frames; values
// below 1 use a default.
func LoadMono(src audio.Source, bufferSize int) ([]float32, int, error) {
	rate := src.SampleRate()
	if rate < 1 {
		return nil, rate, fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}
	if bufferSize < 1 {
		bufferSize = defaultBufferSize
	}

	mono := audio.NewMonoMixer(src)
	buf := make([]float32, bufferSize)

	// Start with a couple of seconds and let append grow from there.
	out := make([]float32, 0, 2*rate)

	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rate, fmt.Errorf("reading source: %w", err)
		}
	}

	if len(out) == 0 {
		return nil, rate, ErrEmptySource
	}

	return out, rate, nil
}

// LoadFile decodes path with the decoder registered for its extension and
// returns it as mono samples.
func LoadFile(reg *audio.Registry, path string) ([]float32, int, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return LoadMono(src, src.BufSize())
}
