// SPDX-License-Identifier: EPL-2.0

// Command granulate plays an audio file through the granular engine, either
// live on the sound card or rendered to a WAV file.
//
// Usage:
//
//	granulate loop.wav                                # play until Ctrl-C
//	granulate -seconds 20 -speed 0.25 voice.ogg       # slow, for 20 seconds
//	granulate -out grains.wav -seconds 30 drums.aiff  # render offline
//	granulate -sweep grain-size:0.1:0.9:8s -sweep alpha:1:0:3s pad.mp3
//
// Knob flags take normalized values in [0, 1]. Sweeps move a knob back and
// forth as knob:from:to:period; knob names are grain-size, grain-rate, speed
// and alpha.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ik5/audgrain"
	"github.com/ik5/audgrain/audio"
	"github.com/ik5/audgrain/control"
	"github.com/ik5/audgrain/formats/aiff"
	"github.com/ik5/audgrain/formats/mp3"
	"github.com/ik5/audgrain/formats/vorbis"
	"github.com/ik5/audgrain/formats/wav"
	"github.com/ik5/audgrain/grain"
	"github.com/ik5/audgrain/internal/playback"
)

const (
	defaultSeconds  = 10.0
	defaultChannels = 2
	defaultBits     = 16
	defaultGain     = 0.8
	defaultControl  = 5 * time.Millisecond
)

type sweepList []control.Sweep

func (s *sweepList) String() string {
	parts := make([]string, len(*s))
	for i, sw := range *s {
		parts[i] = sw.String()
	}
	return strings.Join(parts, ",")
}

func (s *sweepList) Set(v string) error {
	sw, err := control.ParseSweep(v)
	if err != nil {
		return err
	}
	*s = append(*s, sw)
	return nil
}

type options struct {
	input     string
	out       string
	seconds   float64
	channels  int
	bits      int
	knobs     control.Positions
	gain      float64
	smoothing float64
	interval  time.Duration
	buffer    time.Duration
	sweeps    sweepList
	verbose   bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	defaults := control.DefaultPositions()
	opts := options{}

	fs := flag.NewFlagSet("granulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.out, "out", "", "Render to this WAV file instead of playing live")
	fs.Float64Var(&opts.seconds, "seconds", defaultSeconds, "Length to render or play; 0 plays until interrupted")
	fs.IntVar(&opts.channels, "channels", defaultChannels, "Output channels; every channel gets the same signal")
	fs.IntVar(&opts.bits, "bits", defaultBits, "WAV bit depth for -out: 16, 24 or 32")
	fs.Float64Var(&opts.knobs[control.GrainSize], "size", defaults[control.GrainSize], "Grain size knob, 0..1 (10 to 100 ms)")
	fs.Float64Var(&opts.knobs[control.GrainRate], "grain-rate", defaults[control.GrainRate], "Grain interval knob, 0..1 (20 to 200 ms)")
	fs.Float64Var(&opts.knobs[control.PlaybackRate], "speed", defaults[control.PlaybackRate], "Playback speed knob, 0..1 (0x to 2x)")
	fs.Float64Var(&opts.knobs[control.WindowAlpha], "alpha", defaults[control.WindowAlpha], "Window shape knob, 0..1 (sharp to smooth)")
	fs.Float64Var(&opts.gain, "gain", defaultGain, "Output gain")
	fs.Float64Var(&opts.smoothing, "smoothing", control.DefaultCoefficient, "Knob smoothing coefficient, 0..1")
	fs.DurationVar(&opts.interval, "control", defaultControl, "Control frame interval")
	fs.DurationVar(&opts.buffer, "buffer", playback.DefaultBufferSize, "Sound card buffer length")
	fs.Var(&opts.sweeps, "sweep", "Sweep a knob as knob:from:to:period (repeatable)")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: granulate [options] input\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("expected exactly one input file")
	}
	opts.input = fs.Arg(0)

	switch {
	case opts.channels < 1:
		return opts, fmt.Errorf("-channels must be at least 1, got %d", opts.channels)
	case opts.seconds < 0:
		return opts, fmt.Errorf("-seconds must not be negative, got %v", opts.seconds)
	case opts.out != "" && opts.seconds == 0:
		return opts, errors.New("-out needs a positive -seconds")
	case opts.interval <= 0:
		return opts, fmt.Errorf("-control must be positive, got %v", opts.interval)
	}

	return opts, nil
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "", log.LstdFlags)

	samples, rate, err := audgrain.LoadFile(newRegistry(), opts.input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.input, err)
	}

	engine := grain.NewEngine()
	engine.Setup(float64(rate), samples)
	defer engine.Teardown()

	logger.Printf("Loaded %s: %d Hz, %d samples (%.2f s), %d voices",
		opts.input, rate, len(samples), float64(len(samples))/float64(rate), grain.MaxVoices)

	knobs := control.NewKnobs(opts.smoothing, opts.knobs)
	control.Apply(engine, opts.knobs)

	if opts.verbose {
		p := engine.Params()
		logger.Printf("Grain size: %.0f samples (%.1f ms)", p.GrainSize, 1000*p.GrainSize/float64(rate))
		logger.Printf("Grain interval: %.0f samples (%.1f ms)", p.GrainRate, 1000*p.GrainRate/float64(rate))
		logger.Printf("Speed: %.2fx, window alpha: %.2f", p.PlaybackRate, p.WindowAlpha)
		for _, s := range opts.sweeps {
			logger.Printf("Sweep: %s", s)
		}
	}

	if opts.out != "" {
		return render(opts, engine, knobs, logger)
	}
	return play(ctx, opts, engine, knobs, logger)
}

// render writes opts.seconds of output to opts.out. Knobs are updated once
// per control frame, timed by the number of frames rendered so far.
func render(opts options, engine *grain.Engine, knobs *control.Knobs, logger *log.Logger) (err error) {
	rate := engine.SampleRate()

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	w, err := wav.NewWriter(f, rate, opts.bits, opts.channels)
	if err != nil {
		return err
	}

	r, err := audgrain.NewRenderer(engine, opts.channels, float32(opts.gain))
	if err != nil {
		return err
	}

	total := int(opts.seconds * float64(rate))
	blockFrames := max(int(opts.interval.Seconds()*float64(rate)), 1)
	block := make([]float32, blockFrames*opts.channels)

	var stats audgrain.Stats
	start := time.Now()

	for done := 0; done < total; {
		frames := min(blockFrames, total-done)
		elapsed := time.Duration(float64(done) / float64(rate) * float64(time.Second))

		control.ApplySweeps(knobs, elapsed, opts.sweeps)
		knobs.Update(engine)

		buf := block[:frames*opts.channels]
		if _, err := r.Render(buf); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
		if err := w.Write(buf); err != nil {
			return err
		}

		stats = stats.Merge(audgrain.Analyze(buf))
		done += frames
	}

	if err := w.Close(); err != nil {
		return err
	}

	logger.Printf("Wrote %s: %d frames x %d channels in %v",
		opts.out, total, opts.channels, time.Since(start).Round(time.Millisecond))
	logger.Printf("Peak %.3f (%.1f dBFS), RMS %.3f", stats.Peak, stats.PeakDBFS(), stats.RMS)
	if stats.Clipped > 0 {
		logger.Printf("Warning: %d samples clipped; lower -gain", stats.Clipped)
	}

	return nil
}

// play streams the engine to the sound card. Knobs are driven from their
// own goroutine while the device pulls samples.
func play(ctx context.Context, opts options, engine *grain.Engine, knobs *control.Knobs, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var cancel context.CancelFunc
	if opts.seconds > 0 {
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.seconds*float64(time.Second)))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	player, err := playback.New(audio.NewFanOutSource(engine, opts.channels), float32(opts.gain), opts.buffer)
	if err != nil {
		return err
	}
	defer player.Close()

	done := make(chan error, 1)
	go func() {
		done <- control.Drive(ctx, knobs, engine, opts.interval, opts.sweeps...)
	}()

	logger.Printf("Playing on %d channel(s); press Ctrl-C to stop", opts.channels)
	player.Play()

	werr := player.Wait(ctx)
	cancel()
	if err := <-done; err != nil {
		return err
	}
	if werr != nil {
		return werr
	}

	if opts.verbose {
		logger.Printf("Played %d frames", player.Stream().Frames())
	}
	return nil
}
