// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no valid FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a PCM depth other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")
)
