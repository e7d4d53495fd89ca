package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// schraderEG53MA4 decodes the Schrader EG53MA4 sensor, a newer sibling
// of SMD3MA4 with a full byte-aligned payload and a byte-sum checksum.
type schraderEG53MA4 struct{}

func (schraderEG53MA4) Name() string { return "Schrader EG53MA4" }

func (schraderEG53MA4) Meta() Meta {
	return Meta{Preamble: schraderEG53MA4Preamble, Payload: "8 bytes", Check: "byte sum"}
}

const schraderEG53MA4Preamble = "0101010111110101"
const schraderEG53MA4PayloadBytes = 8

func (schraderEG53MA4) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, schraderEG53MA4Preamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(schraderEG53MA4Preamble)

	dst := make([]byte, schraderEG53MA4PayloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, schraderEG53MA4PayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < schraderEG53MA4PayloadBytes*8 {
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
	out.FieldSet.AddFloat("Pressure psi", float64(dst[4])*0.25, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
