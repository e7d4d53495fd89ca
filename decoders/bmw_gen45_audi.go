package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// bmwGen45Audi decodes BMW Gen4/5 and Audi sensors, which share a
// preamble and line code but differ in payload length (11 bytes for
// BMW, 8 for Audi); both lengths are tried in preference order.
type bmwGen45Audi struct{}

func (bmwGen45Audi) Name() string { return "BMW Gen4/5 & Audi" }

func (bmwGen45Audi) Meta() Meta {
	return Meta{Preamble: bmwGen45AudiPreamble, Payload: "11 or 8 bytes", Check: "crc8 poly 0x2f init 0xaa"}
}

const bmwGen45AudiPreamble = "1010101001011001" // 0xAA59

func (bmwGen45Audi) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, bmwGen45AudiPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(bmwGen45AudiPreamble)

	if tryBMWGen45AudiPayload(src, srcLenBytes, fieldStart, 11, p, out) {
		return true
	}
	return tryBMWGen45AudiPayload(src, srcLenBytes, fieldStart, 8, p, out)
}

func tryBMWGen45AudiPayload(src []byte, srcLenBytes, fieldStart, payloadBytes, preambleStart int, out *MessageInfo) bool {
	dst := make([]byte, payloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, payloadBytes, src, srcLenBytes, fieldStart, "10", "01")
	if decoded < payloadBytes*8 {
		return false
	}
	if allZero(dst) {
		return false
	}
	last := payloadBytes - 1
	if checksum.CRC8(dst[:last], 0xAA, 0x2F) != dst[last] {
		return false
	}

	out.StartOffsetBits = preambleStart
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, preambleStart)
	out.FieldSet.AddBytes("Tire ID", dst[0:4], 8)
	out.FieldSet.AddFloat("Pressure kpa", float64(dst[5])*2.45, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[6])-52)
	return true
}
