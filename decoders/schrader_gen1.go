package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// schraderGen1 decodes the first-generation Schrader sensor: Manchester
// payload, byte-XOR checksum.
type schraderGen1 struct{}

func (schraderGen1) Name() string { return "Schrader GEN1" }

func (schraderGen1) Meta() Meta {
	return Meta{Preamble: schraderGen1Preamble, Payload: "8 bytes", Check: "byte xor"}
}

const schraderGen1Preamble = "1111110101"
const schraderGen1PayloadBytes = 8

func (schraderGen1) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, schraderGen1Preamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(schraderGen1Preamble)

	dst := make([]byte, schraderGen1PayloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, schraderGen1PayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < schraderGen1PayloadBytes*8 {
		return false
	}
	if allZero(dst) {
		return false
	}
	if checksum.XorBytes(dst[0:7], 0x00) != dst[7] {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", dst[0:4], 8)
	out.FieldSet.AddFloat("Pressure psi", float64(dst[4])*0.25, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
