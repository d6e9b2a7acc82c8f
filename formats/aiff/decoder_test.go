// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// extended encodes rate as an 80-bit IEEE 754 extended float, the way the
// COMM chunk stores it.
func extended(rate int) []byte {
	out := make([]byte, 10)
	if rate <= 0 {
		return out
	}

	exp := 16383 + 63
	m := uint64(rate)
	for m&(1<<63) == 0 {
		m <<= 1
		exp--
	}
	binary.BigEndian.PutUint16(out, uint16(exp))
	binary.BigEndian.PutUint64(out[2:], m)
	return out
}

// buildAIFF assembles a 16-bit big-endian AIFF stream.
func buildAIFF(channels, sampleRate, bits int, samples []int16) []byte {
	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, int16(channels))
	binary.Write(comm, binary.BigEndian, uint32(len(samples)/max(channels, 1)))
	binary.Write(comm, binary.BigEndian, int16(bits))
	comm.Write(extended(sampleRate))

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	binary.Write(ssnd, binary.BigEndian, samples)

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func drain(t *testing.T, read func([]float32) (int, error)) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 3)
	for range 10000 {
		n, err := read(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("ReadSamples() never reported io.EOF")
	return nil
}

func TestDecoder_Valid(t *testing.T) {
	t.Parallel()

	data := buildAIFF(2, 44100, 16, []int16{16384, -16384, 8192, -8192})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	got := drain(t, src.ReadSamples)
	want := []float32{0.5, -0.5, 0.25, -0.25}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := buildAIFF(1, 8000, 16, []int16{1, 2, 3, 4, 5})

	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := drain(t, src.ReadSamples); len(got) != 5 {
		t.Errorf("read %d samples, want 5", len(got))
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("This is not AIFF data")},
		{"wav header", []byte("RIFF\x24\x00\x00\x00WAVEfmt ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestExtended(t *testing.T) {
	t.Parallel()

	// 8000 Hz is 1.953125 * 2^12.
	want := []byte{0x40, 0x0B, 0xFA, 0, 0, 0, 0, 0, 0, 0}
	if got := extended(8000); !bytes.Equal(got, want) {
		t.Errorf("extended(8000) = % x, want % x", got, want)
	}
}
