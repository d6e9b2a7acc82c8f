// SPDX-License-Identifier: EPL-2.0

package grain

import "math"

// voice is one slot of the pool. Its table is written once when a grain is
// triggered and only read afterwards, until the slot is reused.
type voice struct {
	table  [MaxGrainSize]float32
	start  uint64
	id     int
	active bool
}

// Pool is the fixed-capacity set of grain voices together with the
// round-robin trigger scheduler that fills them. It is allocated once and
// never grows.
type Pool struct {
	voices [MaxVoices]voice
	next   int
}

func newPool() *Pool {
	p := &Pool{}
	for i := range p.voices {
		p.voices[i].id = i
	}
	return p
}

// tableLen is the number of samples a grain of grainSize needs in its table:
// every phase strictly below grainSize is rendered.
func tableLen(grainSize float64) int {
	if !(grainSize > 0) {
		return 0
	}
	n := int(math.Ceil(grainSize))
	return min(n, MaxGrainSize)
}

// triggerInterval truncates a trigger rate to the integer modulus used by
// the scheduler. Rates below one sample trigger on every tick.
func triggerInterval(grainRate float64) uint64 {
	if !(grainRate >= 1) {
		return 1
	}
	return uint64(grainRate)
}

// shouldTrigger reports whether a new grain starts at tick index.
func shouldTrigger(index uint64, grainRate float64) bool {
	return index%triggerInterval(grainRate) == 0
}

// tick runs the trigger scheduler for one sample: when index falls on the
// trigger interval the next voice slot receives a grain read from buf at the
// rounded playback position. It returns the slot used, or -1.
func (p *Pool) tick(buf Buffer, index uint64, grainRate, grainSize, position float64) int {
	if !shouldTrigger(index, grainRate) {
		return -1
	}

	slot := p.next
	p.trigger(slot, buf, index, grainSize, position)

	p.next++
	if p.next >= MaxVoices {
		p.next = 0
	}

	return slot
}

// trigger overwrites voice slot with a fresh grain starting at tick index.
func (p *Pool) trigger(slot int, buf Buffer, index uint64, grainSize, position float64) {
	v := &p.voices[slot]

	// round half up; position is never negative
	start := int(position + 0.5)
	buf.copyFrom(v.table[:tableLen(grainSize)], start)

	v.start = index
	v.active = true
}

// render sums the windowed contribution of every active voice at tick
// index. Voices whose phase has run past the grain end are deactivated.
func (p *Pool) render(index uint64, grainSize, alpha float64) float32 {
	var (
		sum    float64
		active bool
	)

	for i := range p.voices {
		v := &p.voices[i]
		if !v.active {
			continue
		}
		active = true

		phase := index - v.start
		if float64(phase) >= grainSize || phase >= MaxGrainSize {
			v.active = false
			continue
		}

		sum += float64(v.table[phase]) * Amplitude(int(phase), grainSize, alpha)
	}

	if !active {
		return 0
	}

	return float32(sum * Attenuation)
}

// reset silences every voice, clears its table and rewinds the round-robin
// cursor.
func (p *Pool) reset() {
	for i := range p.voices {
		v := &p.voices[i]
		v.active = false
		v.start = 0
		clear(v.table[:])
	}
	p.next = 0
}

// silence deactivates and clears every voice but keeps the round-robin
// cursor, which is what happens when the playback cursor wraps.
func (p *Pool) silence() {
	next := p.next
	p.reset()
	p.next = next
}

// activeCount returns the number of voices currently flagged active.
func (p *Pool) activeCount() int {
	n := 0
	for i := range p.voices {
		if p.voices[i].active {
			n++
		}
	}
	return n
}
