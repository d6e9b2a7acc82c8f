// SPDX-License-Identifier: EPL-2.0

// Package control turns raw knob positions into engine parameter updates.
//
// Raw positions may be written from any goroutine with Knobs.Set. A single
// control goroutine calls Knobs.Update once per control frame, which runs
// every knob through a one-pole Smoother and hands the result to a Target,
// usually a *grain.Engine. Sweeps move knobs automatically over time.
package control
