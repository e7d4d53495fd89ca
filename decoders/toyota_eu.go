package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// toyotaEU decodes the European-market Toyota sensor variant, distinct
// from PMV-107J: ideal Manchester instead of differential, and a
// byte-sum checksum instead of CRC-8.
type toyotaEU struct{}

func (toyotaEU) Name() string { return "Toyota-EU" }

func (toyotaEU) Meta() Meta {
	return Meta{Preamble: toyotaEUPreamble, Payload: "9 bytes", Check: "byte sum"}
}

const toyotaEUPreamble = "01010110"
const toyotaEUPayloadBytes = 9

func (toyotaEU) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, toyotaEUPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(toyotaEUPreamble)

	dst := make([]byte, toyotaEUPayloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, toyotaEUPayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < toyotaEUPayloadBytes*8 {
		return false
	}
	if allZero(dst) {
		return false
	}
	if checksum.SumBytes(dst[0:8], 0x00) != dst[8] {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", dst[0:4], 8)
	out.FieldSet.AddFloat("Pressure kpa", float64(dst[4])*2.0, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
