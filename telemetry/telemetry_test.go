package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n8jr/tpmsd/telemetry"
)

func TestCountersAccumulateAndSnapshot(t *testing.T) {
	var c telemetry.Counters
	c.IncScan()
	c.IncScan()
	c.IncCoherent()
	c.IncDecodeTry()
	c.IncDecodeTry()
	c.IncDecodeTry()
	c.IncDecodeOK()

	snap := c.Snapshot()
	assert.Equal(t, uint64(2), snap.ScanCount)
	assert.Equal(t, uint64(1), snap.CoherentCount)
	assert.Equal(t, uint64(3), snap.DecodeTryCount)
	assert.Equal(t, uint64(1), snap.DecodeOkCount)
}

func TestCountersReset(t *testing.T) {
	var c telemetry.Counters
	c.IncScan()
	c.Reset()
	assert.Equal(t, telemetry.Snapshot{}, c.Snapshot())
}
