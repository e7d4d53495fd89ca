/*
 Package buffer is a bounded circular store of raw RF pulse samples.

 A single producer (the radio interrupt / sampling worker) appends pulses
 as they arrive; a single consumer (the scanner, running on a timer or
 event-loop tick) takes a snapshot before analysing it. Oldest samples are
 silently overwritten once the buffer wraps.
*/
package buffer

import "sync/atomic"

// Pulse is one RF level transition: the level that was held, and for how
// long, in microseconds.
type Pulse struct {
	Level      bool
	DurationUS uint32
}

// SampleBuffer is a fixed-capacity ring of Pulses. head is published with
// release semantics (atomic store) after the paired sample write, and read
// with acquire semantics (atomic load) by Copy, so a consumer running on a
// different goroutine/core than the producer always observes a sample
// before it observes the head index that makes that sample visible.
type SampleBuffer struct {
	samples []Pulse
	head    atomic.Int64 // monotonic write cursor, in the logical index space
	origin  int64        // translation applied by Center: slot(i) = samples[(i+origin) % capacity]

	// ShortPulseDurUS is scratch state set by the scanner: the estimated
	// symbol period (in microseconds) of the best coherent candidate
	// currently described by this buffer.
	ShortPulseDurUS uint32
}

// Alloc returns a new SampleBuffer with room for capacity pulses.
func Alloc(capacity int) *SampleBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &SampleBuffer{samples: make([]Pulse, capacity)}
}

// Capacity returns the number of pulses the buffer can hold.
func (b *SampleBuffer) Capacity() int {
	return len(b.samples)
}

// Head returns the current write cursor in the buffer's logical index
// space (not wrapped to capacity).
func (b *SampleBuffer) Head() int64 {
	return b.head.Load()
}

// Reset zeroes the buffer's contents and rewinds the write cursor.
func (b *SampleBuffer) Reset() {
	for i := range b.samples {
		b.samples[i] = Pulse{}
	}
	b.head.Store(0)
	b.origin = 0
	b.ShortPulseDurUS = 0
}

// Append writes a new pulse at the head of the ring and advances the
// cursor. Safe to run concurrently with a consumer calling Copy on a
// separate SampleBuffer; it is not safe to call Append concurrently with
// another Append.
func (b *SampleBuffer) Append(level bool, durationUS uint32) {
	n := int64(len(b.samples))
	h := b.head.Load()
	b.samples[b.slot(h, n)] = Pulse{Level: level, DurationUS: durationUS}
	b.head.Store(h + 1)
}

// slot maps a logical index (which may be negative or exceed capacity, and
// is measured relative to origin) onto a position in samples.
func (b *SampleBuffer) slot(i, n int64) int {
	m := (i + b.origin) % n
	if m < 0 {
		m += n
	}
	return int(m)
}

// Get returns the pulse stored at logical index i, interpreted modulo
// capacity. i may be negative: Get(buf.Head()-k) retrieves the kth most
// recent sample appended. After Center, small indices near 0 address the
// region Center was asked to position.
func (b *SampleBuffer) Get(i int64) (level bool, durationUS uint32) {
	p := b.samples[b.slot(i, int64(len(b.samples)))]
	return p.Level, p.DurationUS
}

// Copy snapshots src into dst, including the head cursor, origin
// translation, and ShortPulseDurUS scratch field. dst is resized if
// necessary. Copy is the acquire side of the producer/consumer
// handshake: it loads head before copying the backing array, so it never
// reports a head position newer than the samples actually visible to it.
func Copy(dst, src *SampleBuffer) {
	head := src.head.Load()
	if cap(dst.samples) < len(src.samples) {
		dst.samples = make([]Pulse, len(src.samples))
	} else {
		dst.samples = dst.samples[:len(src.samples)]
	}
	copy(dst.samples, src.samples)
	dst.origin = src.origin
	dst.head.Store(head)
	dst.ShortPulseDurUS = src.ShortPulseDurUS
}

// Center shifts buf's logical coordinate frame so that logical index 0
// addresses what used to be logical index i minus lookback. It exists so
// the dispatcher can position a detected run conveniently near the start
// of the widened window it builds around a candidate. Center only makes
// sense on a private working copy (the one the scanner builds via Copy),
// never on the live producer buffer.
func (b *SampleBuffer) Center(i, lookback int64) {
	delta := i - lookback
	b.origin += delta
	b.head.Store(b.head.Load() - delta)
}
