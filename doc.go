// SPDX-License-Identifier: EPL-2.0

// Package audgrain is a granular synthesizer: it cuts short windowed grains
// out of a sample and overlaps them into a continuous stream, steered by
// four controls (grain size, grain rate, playback speed, window shape).
//
// The synthesis engine lives in the grain package. This package connects it
// to the rest of the module:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//
//	samples, rate, err := audgrain.LoadFile(reg, "loop.wav")
//	if err != nil {
//	    // the engine has nothing to play
//	}
//
//	e := grain.NewEngine()
//	e.Setup(float64(rate), samples)
//	e.SetGrainSize(0.05)
//
//	r, _ := audgrain.NewRenderer(e, 2, 0.8)
//	block := make([]float32, 2*512)
//	r.Render(block)
//
// Decoders for WAV, AIFF, MP3 and Ogg Vorbis are in formats/. Knob smoothing
// and automated sweeps are in control/.
package audgrain
