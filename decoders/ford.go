package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// ford decodes Ford sensors: Manchester payload, byte-sum checksum.
type ford struct{}

func (ford) Name() string { return "Ford" }

func (ford) Meta() Meta {
	return Meta{Preamble: fordPreamble, Payload: "8 bytes", Check: "byte sum"}
}

const fordPreamble = "1010011001010110"
const fordPayloadBytes = 8

func (ford) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, fordPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(fordPreamble)

	dst := make([]byte, fordPayloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, fordPayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < fordPayloadBytes*8 {
		return false
	}
	if allZero(dst) {
		return false
	}
	if checksum.SumBytes(dst[0:7], 0x00) != dst[7] {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", dst[0:4], 8)
	out.FieldSet.AddFloat("Pressure kpa", float64(dst[4])*2.0, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
