// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files through
// github.com/go-audio/aiff.
//
// 8, 16, 24 and 32-bit big-endian PCM is accepted with any channel count.
// Samples are returned as interleaved float32 in [-1, 1):
//
//	f, _ := os.Open("loop.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//
// Inputs that cannot seek are read fully into memory before decoding.
package aiff
