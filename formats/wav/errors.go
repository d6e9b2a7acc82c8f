// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no valid RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding indicates a WAV file that is not integer PCM.
	ErrUnsupportedEncoding = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedBitDepth indicates a PCM depth other than 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidChannels indicates a writer configured with fewer than one channel.
	ErrInvalidChannels = errors.New("invalid channel count")
)
