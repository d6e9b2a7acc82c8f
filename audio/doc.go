// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pull-based audio primitives shared by the
// decoders, the grain engine and the output side.
//
// # Source Interface
//
// The Source interface is the foundation of every pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples returns
// io.EOF when the stream is finished.
//
// # Channel Mixing
//
// MonoMixer averages every frame of a multi-channel source into one sample.
// A grain engine reads from a mono buffer, so decoded stereo files pass
// through it first:
//
//	mono := audio.NewMonoMixer(source)
//
// # Output Fan-out
//
// FanOut and FanOutSource do the opposite: they copy one mono sample into
// every channel of an interleaved output frame, which is how a mono engine
// feeds a stereo or multi-channel device:
//
//	out := audio.NewFanOutSource(engine, 2)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("loop.wav")
package audio
