// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, sampleRate, bitDepth, channels int, chunks ...[]float32) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := NewWriter(f, sampleRate, bitDepth, channels)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	for _, c := range chunks {
		if err := w.Write(c); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	return path
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		channels int
		tol      float64
	}{
		{"16-bit mono", 16, 1, 1.0 / 32768},
		{"16-bit stereo", 16, 2, 1.0 / 32768},
		{"24-bit mono", 24, 1, 1.0 / 8388608},
		{"32-bit stereo", 32, 2, 1e-6},
	}

	input := []float32{0, 0.25, -0.25, 0.5, -0.5, 0.75, -0.75, 0.125}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTemp(t, 44100, tt.bitDepth, tt.channels, input[:4], input[4:])

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			src, err := Decoder{}.Decode(f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 44100 || src.Channels() != tt.channels {
				t.Errorf("format = %d Hz / %d ch, want 44100 Hz / %d ch",
					src.SampleRate(), src.Channels(), tt.channels)
			}

			got := readAll(t, src, 5)
			if len(got) != len(input) {
				t.Fatalf("read %d samples, want %d", len(got), len(input))
			}
			for i := range input {
				if math.Abs(float64(got[i]-input[i])) > tt.tol {
					t.Errorf("sample[%d] = %v, want %v", i, got[i], input[i])
				}
			}
		})
	}
}

func TestWriter_Clamps(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, 8000, 16, 1, []float32{2, -2, 1})

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src, 8)
	want := []float32{32767.0 / 32768, -1, 32767.0 / 32768}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWriter_Samples(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "count.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := NewWriter(f, 8000, 16, 2)
	if err != nil {
		t.Fatal(err)
	}
	w.Write(make([]float32, 10))
	w.Write(nil)
	w.Write(make([]float32, 6))

	if w.Samples() != 16 {
		t.Errorf("Samples() = %d, want 16", w.Samples())
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewWriter_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		channels int
		want     error
	}{
		{"8-bit", 8, 1, ErrUnsupportedBitDepth},
		{"12-bit", 12, 1, ErrUnsupportedBitDepth},
		{"no channels", 16, 0, ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			_, err = NewWriter(f, 8000, tt.bitDepth, tt.channels)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewWriter() error = %v, want %v", err, tt.want)
			}
		})
	}
}
