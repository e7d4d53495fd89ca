package decoders

import (
	"strings"

	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// gmAftermarket decodes the 17-byte GM aftermarket sensor variant. An
// older 9-byte variant of this sensor exists in the wild but is not
// supported; the 17-byte format supersedes it.
type gmAftermarket struct{}

func (gmAftermarket) Name() string { return "GM Aftermarket" }

func (gmAftermarket) Meta() Meta {
	return Meta{Preamble: gmAftermarketPreamble, Payload: "17 bytes", Check: "byte sum"}
}

const gmAftermarketPayloadBytes = 17

var gmAftermarketPreamble = strings.Repeat("10", 48) // Manchester of a 0x00 preamble byte run

func (gmAftermarket) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, gmAftermarketPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(gmAftermarketPreamble)

	dst := make([]byte, gmAftermarketPayloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, gmAftermarketPayloadBytes, src, srcLenBytes, fieldStart, "10", "01")
	if decoded < gmAftermarketPayloadBytes*8 {
		return false
	}
	if !allZero(dst[0:6]) {
		return false
	}
	if checksum.SumBytes(dst[6:16], 0) != dst[16] {
		return false
	}
	if allZero(dst[6:11]) {
		return false
	}

	kpa := float64(dst[14]) * 2.75
	if kpa > 1000 {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", dst[6:11], 10)
	out.FieldSet.AddFloat("Pressure kpa", kpa, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[15])-60)
	return true
}
