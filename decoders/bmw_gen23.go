package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// bmwGen23 decodes BMW Gen2/3 sensors: differential Manchester (sliding
// form) after a 16-bit preamble, payload length 11 or 10 bytes depending
// on sensor generation, validated with a whole-payload CRC-16 that must
// reduce to zero (the trailing two bytes are the transmitted check
// value).
type bmwGen23 struct{}

func (bmwGen23) Name() string { return "BMW Gen2/3" }

func (bmwGen23) Meta() Meta {
	return Meta{Preamble: bmwGen23Preamble, Payload: "11 or 10 bytes", Check: "crc16 poly 0x1021"}
}

const bmwGen23Preamble = "1100110011001101" // 0xCCCD

func (bmwGen23) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, bmwGen23Preamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(bmwGen23Preamble)

	if tryBMWGen23Payload(src, srcLenBytes, fieldStart, 11, p, out) {
		return true
	}
	return tryBMWGen23Payload(src, srcLenBytes, fieldStart, 10, p, out)
}

func tryBMWGen23Payload(src []byte, srcLenBytes, fieldStart, payloadBytes, preambleStart int, out *MessageInfo) bool {
	dst := make([]byte, payloadBytes)
	decoded := linecode.DiffManchesterDecode(dst, payloadBytes, src, srcLenBytes, fieldStart, payloadBytes*8)
	if decoded < payloadBytes*8 {
		return false
	}
	if allZero(dst) {
		return false
	}
	if checksum.CRC16(dst, 0x0000, 0x1021) != 0 {
		return false
	}

	out.StartOffsetBits = preambleStart
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, preambleStart)
	out.FieldSet.AddBytes("Tire ID", dst[0:4], 8)
	out.FieldSet.AddFloat("Pressure kpa", (float64(dst[4])-43)*2.5, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
