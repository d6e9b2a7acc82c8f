// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// The Decoder accepts 16, 24 and 32-bit PCM with any number of channels and
// any chunk layout; unknown chunks between "fmt " and "data" are skipped.
// Samples come out as interleaved float32 in [-1, 1):
//
//	f, _ := os.Open("source.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Writer goes the other way and is used to save rendered output:
//
//	out, _ := os.Create("grains.wav")
//	w, err := wav.NewWriter(out, 44100, 16, 2)
//	w.Write(block)
//	w.Close()
//
// Out-of-range samples are clamped before conversion.
package wav
