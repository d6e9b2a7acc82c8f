// SPDX-License-Identifier: EPL-2.0

// Package playback sends an audio.Source to the sound card with
// github.com/ebitengine/oto/v3.
//
// Stream does the per-block work the device callback needs: pull samples,
// apply gain and encode float32 little-endian. It has no device dependency,
// so it is tested directly; Player only owns the oto context and player.
package playback
