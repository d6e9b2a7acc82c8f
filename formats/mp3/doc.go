// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source from this package
// reports two channels, even for mono files. ReadSamples returns whole
// frames only and needs room for at least one.
package mp3
