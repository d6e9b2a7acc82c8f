// SPDX-License-Identifier: EPL-2.0

package control

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Knob names one of the four synthesis controls.
type Knob int

const (
	GrainSize Knob = iota
	GrainRate
	PlaybackRate
	WindowAlpha

	NumKnobs = 4
)

var knobNames = [NumKnobs]string{"grain-size", "grain-rate", "speed", "alpha"}

func (k Knob) String() string {
	if k < 0 || k >= NumKnobs {
		return fmt.Sprintf("Knob(%d)", int(k))
	}
	return knobNames[k]
}

// ParseKnob maps a knob name as printed by String back to the Knob.
func ParseKnob(name string) (Knob, error) {
	for i, n := range knobNames {
		if n == name {
			return Knob(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKnob, name)
}

// Target receives normalized parameter updates. *grain.Engine satisfies it.
type Target interface {
	SetGrainSize(x float64)
	SetGrainRate(x float64)
	SetPlaybackRate(x float64)
	SetWindowAlpha(x float64)
}

// Positions holds one normalized value per knob.
type Positions [NumKnobs]float64

// DefaultPositions are the startup knob values: short grains, a fast
// trigger rate, normal speed and a mostly flat window.
func DefaultPositions() Positions {
	return Positions{
		GrainSize:    0.05,
		GrainRate:    0.03,
		PlaybackRate: 0.5,
		WindowAlpha:  0.8,
	}
}

// Knobs is a bank of four smoothed controls.
//
// Set and Raw are safe from any goroutine. Update, Smoothed and Reset belong
// to the single control goroutine.
type Knobs struct {
	raw      [NumKnobs]atomic.Uint64
	smoother [NumKnobs]Smoother
}

// NewKnobs starts every knob, raw and smoothed, at initial.
func NewKnobs(coef float64, initial Positions) *Knobs {
	k := &Knobs{}
	for i, v := range initial {
		k.raw[i].Store(math.Float64bits(v))
		k.smoother[i] = NewSmoother(coef, v)
	}
	return k
}

// Set records a raw reading for knob. Out-of-range knobs are ignored.
func (k *Knobs) Set(knob Knob, x float64) {
	if knob < 0 || knob >= NumKnobs {
		return
	}
	k.raw[knob].Store(math.Float64bits(x))
}

// Raw returns the last reading stored with Set.
func (k *Knobs) Raw(knob Knob) float64 {
	if knob < 0 || knob >= NumKnobs {
		return 0
	}
	return math.Float64frombits(k.raw[knob].Load())
}

// Smoothed returns the current smoothed positions.
func (k *Knobs) Smoothed() Positions {
	var p Positions
	for i := range k.smoother {
		p[i] = k.smoother[i].Value()
	}
	return p
}

// Update advances every smoother by one control frame and applies the
// smoothed values to t. A nil t only advances the smoothers.
func (k *Knobs) Update(t Target) Positions {
	var p Positions
	for i := range k.smoother {
		p[i] = k.smoother[i].Next(math.Float64frombits(k.raw[i].Load()))
	}

	if t != nil {
		Apply(t, p)
	}
	return p
}

// Reset snaps raw and smoothed values to p without applying them.
func (k *Knobs) Reset(p Positions) {
	for i, v := range p {
		k.raw[i].Store(math.Float64bits(v))
		k.smoother[i].Reset(v)
	}
}

// Apply calls all four setters of t with p.
func Apply(t Target, p Positions) {
	t.SetGrainSize(p[GrainSize])
	t.SetGrainRate(p[GrainRate])
	t.SetPlaybackRate(p[PlaybackRate])
	t.SetWindowAlpha(p[WindowAlpha])
}
