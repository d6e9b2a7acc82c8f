// SPDX-License-Identifier: EPL-2.0

package control

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Sweep moves one knob back and forth between From and To. A full cycle
// From -> To -> From takes Period.
type Sweep struct {
	Knob   Knob
	From   float64
	To     float64
	Period time.Duration
}

// ParseSweep reads "knob:from:to:period", e.g. "speed:0.25:0.75:4s".
func ParseSweep(s string) (Sweep, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return Sweep{}, fmt.Errorf("%w: %q: want knob:from:to:period", ErrInvalidSweep, s)
	}

	knob, err := ParseKnob(parts[0])
	if err != nil {
		return Sweep{}, err
	}

	from, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Sweep{}, fmt.Errorf("%w: from: %w", ErrInvalidSweep, err)
	}
	to, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Sweep{}, fmt.Errorf("%w: to: %w", ErrInvalidSweep, err)
	}
	period, err := time.ParseDuration(parts[3])
	if err != nil {
		return Sweep{}, fmt.Errorf("%w: period: %w", ErrInvalidSweep, err)
	}
	if period <= 0 {
		return Sweep{}, fmt.Errorf("%w: period %v is not positive", ErrInvalidSweep, period)
	}

	return Sweep{Knob: knob, From: from, To: to, Period: period}, nil
}

func (s Sweep) String() string {
	return fmt.Sprintf("%s:%g:%g:%s", s.Knob, s.From, s.To, s.Period)
}

// At returns the knob position elapsed into the sweep. The shape is a
// triangle wave: From at the start of each cycle, To half way through.
func (s Sweep) At(elapsed time.Duration) float64 {
	if s.Period <= 0 {
		return s.From
	}

	phase := math.Mod(float64(elapsed), float64(s.Period)) / float64(s.Period)
	if phase < 0 {
		phase += 1
	}
	tri := 1 - math.Abs(2*phase-1)

	return s.From + (s.To-s.From)*tri
}

// ApplySweeps writes every sweep's position at elapsed into k.
func ApplySweeps(k *Knobs, elapsed time.Duration, sweeps []Sweep) {
	for _, s := range sweeps {
		k.Set(s.Knob, s.At(elapsed))
	}
}

// Drive runs the control loop: every interval it moves the swept knobs,
// advances the smoothers and applies the result to t. It is meant to run
// in its own goroutine next to the audio goroutine and returns once ctx is
// done.
func Drive(ctx context.Context, k *Knobs, t Target, interval time.Duration, sweeps ...Sweep) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			ApplySweeps(k, now.Sub(start), sweeps)
			k.Update(t)
		}
	}
}
