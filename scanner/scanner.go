/*
 Package scanner implements the coherent-signal detector: it clusters
 pulse durations into up to three timing classes per level, derives the
 short-pulse unit from those classes, and hands off each sufficiently
 long run to the dispatcher.

 The clustering loop walks forward accepting pulses into a small set of
 running-mean buckets and stops the instant one doesn't fit: a
 structural mismatch ends the current window rather than raising an
 error, since buffers mostly hold noise and runs ending is the common
 case.
*/
package scanner

import (
	"math"

	"github.com/n8jr/tpmsd/buffer"
	"github.com/n8jr/tpmsd/decoders"
	"github.com/n8jr/tpmsd/dispatcher"
	"github.com/n8jr/tpmsd/telemetry"
)

// minCoherentRun is the longest run of classified pulses the scanner
// still ignores; a candidate needs at least 19.
const minCoherentRun = 18

// centerLookback is the small cushion Center leaves before the detected
// run, giving the dispatcher's preamble search room on either side.
const centerLookback = 16

// maxPulseDurUS rejects glitches and idle-line gaps outside any real
// TPMS symbol.
const maxPulseDurUS = 4000

// App holds the latched best-candidate state the scanner mutates between
// calls, the working copies it reuses, and the instrumentation counters
// the shell's telemetry display reads. It is consumer-owned state: only
// the goroutine calling ScanForSignal may touch it.
type App struct {
	BestLen         int
	Decoded         bool
	MsgInfo         *decoders.MessageInfo
	DetectedSamples *buffer.SampleBuffer
	Counters        telemetry.Counters

	working   *buffer.SampleBuffer
	candidate *buffer.SampleBuffer
}

// ReleaseLatched resets the latch for the next scan. The shell calls it
// after reading MsgInfo and DetectedSamples out of a decoded candidate.
func (a *App) ReleaseLatched() {
	a.MsgInfo = nil
	a.BestLen = 0
	a.Decoded = false
}

type classSlot struct {
	mean  float64
	count int
}

// pulseSource is the minimal buffer view classifyRun needs.
type pulseSource interface {
	Get(i int64) (level bool, durationUS uint32)
}

// ScanForSignal is the scanner's single entry point: it snapshots
// source, walks the snapshot looking for coherent runs, and
// dispatches each one long enough to be a candidate. On return, if
// app.Decoded is true, app.MsgInfo and app.DetectedSamples hold the best
// decode found this call; the shell reads them and calls ReleaseLatched.
func ScanForSignal(app *App, source *buffer.SampleBuffer, minUS uint32) {
	app.Counters.IncScan()

	if app.working == nil {
		app.working = buffer.Alloc(source.Capacity())
	}
	if app.candidate == nil {
		app.candidate = buffer.Alloc(source.Capacity())
	}
	buffer.Copy(app.working, source)

	capacity := int64(app.working.Capacity())
	for i := int64(0); i < capacity; {
		runLength, shortPulseDurUS := classifyRun(app.working, i, minUS, app.working.Capacity())
		step := int64(runLength)
		if step < 1 {
			step = 1
		}

		if runLength > minCoherentRun {
			app.Counters.IncCoherent()
			app.considerCandidate(i, runLength, shortPulseDurUS)
		}

		i += step
	}
}

// considerCandidate centers a private copy of the working buffer around
// i, dispatches it, and applies the latch replacement rule: a new
// candidate only displaces the latch if the latch isn't already decoded,
// and either this run is longer or this run decoded.
func (a *App) considerCandidate(i int64, runLength int, shortPulseDurUS uint32) {
	buffer.Copy(a.candidate, a.working)
	a.candidate.ShortPulseDurUS = shortPulseDurUS
	a.candidate.Center(i, centerLookback)

	info := &decoders.MessageInfo{}
	a.Counters.IncDecodeTry()
	decoded := dispatcher.DecodeSignal(a.candidate, runLength, info)
	if decoded {
		a.Counters.IncDecodeOK()
	}

	if a.Decoded {
		return
	}
	if runLength <= a.BestLen && !decoded {
		return
	}

	a.MsgInfo = info
	a.BestLen = runLength
	a.Decoded = decoded
	if a.DetectedSamples == nil {
		a.DetectedSamples = buffer.Alloc(a.candidate.Capacity())
	}
	buffer.Copy(a.DetectedSamples, a.candidate)
}

// classifyRun walks src starting at logical index start, clustering
// pulse durations into at most three running-mean classes per level,
// and returns the accepted run length and the derived short-pulse
// duration. maxRun caps the walk at one full lap of the ring: Get wraps
// modulo capacity, so a buffer of uniformly in-class pulses would
// otherwise re-accept the same samples forever.
func classifyRun(src pulseSource, start int64, minUS uint32, maxRun int) (runLength int, shortPulseDurUS uint32) {
	var classes [2][3]classSlot

	i := start
	for runLength < maxRun {
		level, dur := src.Get(i)
		if dur < minUS || dur > maxPulseDurUS {
			break
		}
		lvl := 0
		if level {
			lvl = 1
		}

		accepted := false
		emptySlot := -1
		for ci := range classes[lvl] {
			c := &classes[lvl][ci]
			if c.count == 0 {
				if emptySlot == -1 {
					emptySlot = ci
				}
				continue
			}
			if math.Abs(float64(dur)-c.mean) < c.mean/5 {
				c.mean = (c.mean*float64(c.count) + float64(dur)) / float64(c.count+1)
				c.count++
				accepted = true
				break
			}
		}
		if !accepted {
			if emptySlot == -1 {
				break
			}
			classes[lvl][emptySlot] = classSlot{mean: float64(dur), count: 1}
		}

		runLength++
		i++
	}

	return runLength, deriveShortPulseDurUS(classes)
}

// deriveShortPulseDurUS picks, for each level, the smallest mean among
// classes with at least 3 members, borrows the other level's value if
// one level has none, and returns the mean of the two levels' values.
func deriveShortPulseDurUS(classes [2][3]classSlot) uint32 {
	var levelMin [2]float64
	var levelHas [2]bool

	for lvl := 0; lvl < 2; lvl++ {
		best := math.MaxFloat64
		has := false
		for _, c := range classes[lvl] {
			if c.count >= 3 && c.mean < best {
				best = c.mean
				has = true
			}
		}
		levelMin[lvl] = best
		levelHas[lvl] = has
	}

	if !levelHas[0] && !levelHas[1] {
		return 0
	}
	if !levelHas[0] {
		levelMin[0] = levelMin[1]
	}
	if !levelHas[1] {
		levelMin[1] = levelMin[0]
	}
	return uint32((levelMin[0] + levelMin[1]) / 2)
}
