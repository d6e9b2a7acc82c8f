// SPDX-License-Identifier: EPL-2.0

package grain

// Buffer gives wraparound read access to a borrowed, read-only slice of mono
// samples. The zero value is an unset buffer that reads as silence.
type Buffer struct {
	samples []float32
}

// NewBuffer wraps samples without copying them. The caller keeps ownership
// and must not modify the slice while an Engine reads from it.
func NewBuffer(samples []float32) Buffer {
	return Buffer{samples: samples}
}

// Len returns the number of samples in the buffer.
func (b Buffer) Len() int { return len(b.samples) }

// Read returns the sample at position, treating the buffer as cyclic, so
// Read(-1) == Read(Len()-1) and Read(Len()) == Read(0). Any integer position
// is accepted. An unset or empty buffer returns 0.
func (b Buffer) Read(position int) float32 {
	n := len(b.samples)
	if n == 0 {
		return 0
	}

	position %= n
	if position < 0 {
		position += n
	}

	return b.samples[position]
}

// copyFrom fills dst with consecutive samples starting at position,
// wrapping around the end of the buffer as often as needed.
func (b Buffer) copyFrom(dst []float32, position int) {
	n := len(b.samples)
	if n == 0 {
		clear(dst)
		return
	}

	position %= n
	if position < 0 {
		position += n
	}

	for len(dst) > 0 {
		c := copy(dst, b.samples[position:])
		dst = dst[c:]
		position = 0
	}
}
