/*
 Package telemetry holds the scanner's instrumentation counters: a fixed
 struct of named, atomically published values the display layer can poll
 without coordinating with the scan loop. The scanner increments them;
 everyone else only reads snapshots.
*/
package telemetry

import "sync/atomic"

// Counters is the scanner's instrumentation register block.
type Counters struct {
	scanCount      atomic.Uint64
	coherentCount  atomic.Uint64
	decodeTryCount atomic.Uint64
	decodeOkCount  atomic.Uint64
}

// Snapshot is a copy of Counters read one field at a time, the shape the
// shell's telemetry display reads.
type Snapshot struct {
	ScanCount      uint64
	CoherentCount  uint64
	DecodeTryCount uint64
	DecodeOkCount  uint64
}

// IncScan records one pass of the scan loop over the buffer.
func (c *Counters) IncScan() { c.scanCount.Add(1) }

// IncCoherent records one run of pulses recognized as a coherent
// candidate (run length > 18).
func (c *Counters) IncCoherent() { c.coherentCount.Add(1) }

// IncDecodeTry records one dispatch attempt against a candidate region.
func (c *Counters) IncDecodeTry() { c.decodeTryCount.Add(1) }

// IncDecodeOK records one successful decode.
func (c *Counters) IncDecodeOK() { c.decodeOkCount.Add(1) }

// Snapshot reads all four counters as a single consistent-enough copy for
// display; exact linearizability across fields is not required since this
// is a monitoring read, not a control decision.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		ScanCount:      c.scanCount.Load(),
		CoherentCount:  c.coherentCount.Load(),
		DecodeTryCount: c.decodeTryCount.Load(),
		DecodeOkCount:  c.decodeOkCount.Load(),
	}
}

// Reset zeroes every counter.
func (c *Counters) Reset() {
	c.scanCount.Store(0)
	c.coherentCount.Store(0)
	c.decodeTryCount.Store(0)
	c.decodeOkCount.Store(0)
}
