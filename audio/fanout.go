// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/tphakala/simd/f32"

// FanOut copies every mono sample in src to each of channels interleaved
// slots in dst and returns the number of frames written, which is limited by
// len(dst)/channels. It is the output side counterpart of MonoMixer.
func FanOut(dst, src []float32, channels int) (int, error) {
	if channels < 1 {
		return 0, ErrInvalidChannels
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(src), len(dst)/channels)
	src = src[:frames]

	switch channels {
	case 1:
		copy(dst, src)
	case 2:
		f32.Interleave2(dst[:frames*2], src, src)
	default:
		for f, s := range src {
			frame := dst[f*channels : (f+1)*channels]
			for c := range frame {
				frame[c] = s
			}
		}
	}

	return frames, nil
}

// FanOutSource presents a mono Source as a multi-channel one by duplicating
// each sample into every channel.
type FanOutSource struct {
	src      Source
	channels int
	tmp      []float32
}

// NewFanOutSource wraps a mono src. channels below 1 are treated as 1.
func NewFanOutSource(src Source, channels int) *FanOutSource {
	return &FanOutSource{
		src:      src,
		channels: max(channels, 1),
		tmp:      make([]float32, 4096),
	}
}

func (f *FanOutSource) SampleRate() int { return f.src.SampleRate() }
func (f *FanOutSource) Channels() int   { return f.channels }
func (f *FanOutSource) BufSize() int    { return f.src.BufSize() * f.channels }
func (f *FanOutSource) Close() error    { return f.src.Close() }

// ReadSamples fills dst with whole interleaved frames.
func (f *FanOutSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%f.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / f.channels
	if frames == 0 {
		return 0, nil
	}
	if cap(f.tmp) < frames {
		f.tmp = make([]float32, frames)
	}
	tmp := f.tmp[:frames]

	n, err := f.src.ReadSamples(tmp)
	if n == 0 {
		return 0, err
	}

	written, ferr := FanOut(dst, tmp[:n], f.channels)
	if ferr != nil {
		return 0, ferr
	}

	return written * f.channels, err
}
