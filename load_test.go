// SPDX-License-Identifier: EPL-2.0

package audgrain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audgrain/audio"
	"github.com/ik5/audgrain/formats/wav"
	"github.com/ik5/audgrain/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMono_Mono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 1000, 0.001)

	samples, rate, err := LoadMono(src, 64)
	require.NoError(t, err)

	assert.Equal(t, 8000, rate)
	require.Len(t, samples, 1000)
	assert.InDelta(t, 0.5, samples[500], 1e-6)
}

func TestLoadMono_StereoAverages(t *testing.T) {
	t.Parallel()

	// Left carries the frame ramp, right is its negation plus one, so every
	// frame averages to 0.5.
	src := audiotest.NewMockSource(44100, 2, 300, func(frame, ch int) float32 {
		v := float32(frame) / 300
		if ch == 1 {
			return 1 - v
		}
		return v
	})

	samples, _, err := LoadMono(src, 100)
	require.NoError(t, err)
	require.Len(t, samples, 300)

	for i, v := range samples {
		assert.InDelta(t, 0.5, v, 1e-6, "sample %d", i)
	}
}

func TestLoadMono_MultiChannel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(48000, 4, 10, func(_, ch int) float32 {
		return float32(ch)
	})

	samples, _, err := LoadMono(src, 0)
	require.NoError(t, err)
	require.Len(t, samples, 10)
	assert.InDelta(t, 1.5, samples[0], 1e-6)
}

func TestLoadMono_Empty(t *testing.T) {
	t.Parallel()

	_, rate, err := LoadMono(audiotest.NewSilentSource(22050, 2, 0), 128)

	assert.ErrorIs(t, err, ErrEmptySource)
	assert.Equal(t, 22050, rate)
}

func TestLoadMono_InvalidRate(t *testing.T) {
	t.Parallel()

	_, _, err := LoadMono(audiotest.NewSilentSource(0, 1, 10), 128)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestLoadMono_ReadError(t *testing.T) {
	t.Parallel()

	_, _, err := LoadMono(audiotest.NewFailingSource(8000, 2, 50), 16)
	assert.ErrorIs(t, err, audiotest.ErrInjected)
}

func writeWAV(t *testing.T, path string, rate, channels int, samples []float32) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := wav.NewWriter(f, rate, 16, channels)
	require.NoError(t, err)
	require.NoError(t, w.Write(samples))
	require.NoError(t, w.Close())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Stereo.WAV")
	writeWAV(t, path, 16000, 2, []float32{0.5, 0, 0.25, 0.25, -0.5, -0.5})

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})

	samples, rate, err := LoadFile(reg, path)
	require.NoError(t, err)

	assert.Equal(t, 16000, rate)
	require.Len(t, samples, 3)
	assert.InDelta(t, 0.25, samples[0], 1e-4)
	assert.InDelta(t, 0.25, samples[1], 1e-4)
	assert.InDelta(t, -0.5, samples[2], 1e-4)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})

	garbage := filepath.Join(dir, "garbage.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not RIFF"), 0o600))

	_, _, err := LoadFile(reg, filepath.Join(dir, "song.flac"))
	assert.ErrorIs(t, err, audio.ErrUnknownFormat)

	_, _, err = LoadFile(reg, filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = LoadFile(reg, garbage)
	assert.ErrorIs(t, err, wav.ErrNotWavFile)
}
