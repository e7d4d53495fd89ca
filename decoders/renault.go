package decoders

import (
	"github.com/n8jr/tpmsd/bitmap"
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// renault decodes Renault TPMS sensors using the pairwise differential
// Manchester form, whose bit sense differs from the sliding form used
// by Toyota/BMW/Porsche; the two are not interchangeable.
type renault struct{}

func (renault) Name() string { return "Renault" }

func (renault) Meta() Meta {
	return Meta{Preamble: renaultPreamble, Payload: "8 bytes", Check: "byte xor"}
}

const renaultPreamble = "01010101011001"
const renaultPayloadBytes = 8

func (renault) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, renaultPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(renaultPreamble)
	previous := bitmap.Get(src, srcLenBits, fieldStart-1)

	dst := make([]byte, renaultPayloadBytes)
	decoded := linecode.ConvertFromDiffManchester(dst, renaultPayloadBytes, src, srcLenBytes, fieldStart, previous)
	if decoded < renaultPayloadBytes*8 {
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
	out.FieldSet.AddFloat("Pressure kpa", float64(dst[4])*1.96, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
