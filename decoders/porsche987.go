package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// porsche987 decodes Porsche 987-platform sensors: differential
// Manchester (sliding form) after the 12-bit tail of the preamble,
// 10-byte payload, whole-payload CRC-16 that must reduce to zero.
type porsche987 struct{}

func (porsche987) Name() string { return "Porsche 987" }

func (porsche987) Meta() Meta {
	return Meta{Preamble: porsche987Preamble, Payload: "10 bytes", Check: "crc16 poly 0x1021 init 0xffff"}
}

const porsche987Preamble = "110011001010"
const porsche987PayloadBytes = 10

func (porsche987) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, porsche987Preamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(porsche987Preamble)

	dst := make([]byte, porsche987PayloadBytes)
	decoded := linecode.DiffManchesterDecode(dst, porsche987PayloadBytes, src, srcLenBytes, fieldStart, porsche987PayloadBytes*8)
	if decoded < porsche987PayloadBytes*8 {
		return false
	}
	if allZero(dst) {
		return false
	}
	if checksum.CRC16(dst, 0xFFFF, 0x1021) != 0 {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", dst[0:4], 8)
	out.FieldSet.AddFloat("Pressure kpa", float64(dst[4])*2.5-100, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
