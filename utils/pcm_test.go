// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float32
		bitDepth int
		want     int
	}{
		{name: "zero", input: 0, bitDepth: 16, want: 0},
		{name: "max positive 16", input: 1, bitDepth: 16, want: math.MaxInt16},
		{name: "max negative 16", input: -1, bitDepth: 16, want: math.MinInt16},
		{name: "half 16", input: 0.5, bitDepth: 16, want: 16384},
		{name: "clamp over 16", input: 1.5, bitDepth: 16, want: math.MaxInt16},
		{name: "clamp under 16", input: -100, bitDepth: 16, want: math.MinInt16},
		{name: "max positive 8", input: 1, bitDepth: 8, want: 127},
		{name: "max negative 8", input: -1, bitDepth: 8, want: -128},
		{name: "max positive 24", input: 1, bitDepth: 24, want: 8388607},
		{name: "max negative 24", input: -1, bitDepth: 24, want: -8388608},
		{name: "max positive 32", input: 1, bitDepth: 32, want: math.MaxInt32},
		{name: "unknown depth is 16-bit", input: 1, bitDepth: 12, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToPCM(tt.input, tt.bitDepth); got != tt.want {
				t.Errorf("Float32ToPCM(%v, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for f := -0.99; f <= 1.0; f += 0.01 {
		cur := Float32ToInt16(float32(f))
		if cur < prev {
			t.Errorf("Float32ToInt16 not monotonic at %v: %d < %d", f, cur, prev)
		}
		prev = cur
	}
}

func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{8, 16, 24, 32} {
		scale := float64(PCMScale(depth))
		for _, v := range []int{0, 1, -1, 100, -100, int(scale) - 1, -int(scale)} {
			x := PCMToFloat32(v, depth)
			if x < -1 || x > 1 {
				t.Errorf("PCMToFloat32(%d, %d) = %v outside [-1, 1]", v, depth, x)
			}
			back := Float32ToPCM(x, depth)
			// float32 carries 24 bits of mantissa, so 32-bit PCM loses the low bits
			tol := 0.0
			if depth == 32 {
				tol = 256
			}
			if math.Abs(float64(back-v)) > tol {
				t.Errorf("round trip %d-bit %d -> %v -> %d", depth, v, x, back)
			}
		}
	}
}

func TestBatchConversions(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.5, -0.5, 2}
	ints := make([]int, 3)
	if n := FloatsToPCM(ints, src, 16); n != 3 {
		t.Fatalf("FloatsToPCM() n = %d, want 3", n)
	}
	if ints[1] != 16384 || ints[2] != -16384 {
		t.Errorf("FloatsToPCM() = %v", ints)
	}

	back := make([]float32, 8)
	if n := PCMToFloats(back, ints, 16); n != 3 {
		t.Fatalf("PCMToFloats() n = %d, want 3", n)
	}
	if back[1] != 0.5 || back[2] != -0.5 {
		t.Errorf("PCMToFloats() = %v", back[:3])
	}
}

func TestFloatsToPCM_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	src := make([]float32, 1024)
	dst := make([]int, 1024)

	allocs := testing.AllocsPerRun(100, func() {
		FloatsToPCM(dst, src, 16)
	})

	if allocs > 0 {
		t.Errorf("FloatsToPCM allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloatsToPCM(b *testing.B) {
	src := make([]float32, 8000)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.1))
	}
	dst := make([]int, len(src))

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		FloatsToPCM(dst, src, 16)
	}
}
