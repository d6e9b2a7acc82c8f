// SPDX-License-Identifier: EPL-2.0

// Package grain implements a real-time granular synthesis engine.
//
// An Engine repeatedly excerpts short windowed fragments ("grains") from a
// fixed mono source buffer and overlaps them into a continuous output stream.
// Four normalized controls drive it: grain size, grain trigger rate,
// playback speed and window shape.
//
// # Per-sample flow
//
// Each call to Engine.Step produces exactly one output sample:
//
//  1. the playback cursor advances by the playback rate
//  2. the trigger scheduler may copy a new grain into the next voice slot
//  3. every active voice contributes table[phase] * window(phase)
//  4. the sum is scaled by a fixed headroom factor of 1/3
//
// When the cursor runs past the end of the source buffer the engine performs
// a hard reset: tick counter and cursor return to zero and every voice is
// silenced.
//
// # Real-time safety
//
// Step never allocates, never blocks and touches a bounded amount of memory:
// at most MaxGrainSize samples when a grain is created and exactly MaxVoices
// voices when rendering. The voice pool is a pre-allocated array indexed by a
// round-robin cursor.
//
// # Parameters from another goroutine
//
// The setters publish a complete Params snapshot through an atomic pointer.
// Step loads the snapshot once per tick, so a control goroutine can turn the
// knobs while the audio goroutine renders without ever observing a torn
// update:
//
//	e := grain.NewEngine()
//	e.Setup(44100, samples)
//
//	go func() {
//	    for v := range knob {
//	        e.SetGrainSize(v)
//	    }
//	}()
//
//	for i := range out {
//	    out[i] = e.Step()
//	}
//
// Setup and Teardown are not safe to call concurrently with Step.
package grain
