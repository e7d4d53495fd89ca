package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// citroen decodes Citroen (and shared PSA-group) sensors: Manchester
// payload validated with CRC-8.
type citroen struct{}

func (citroen) Name() string { return "Citroen" }

func (citroen) Meta() Meta {
	return Meta{Preamble: citroenPreamble, Payload: "8 bytes", Check: "crc8 poly 0x07"}
}

const citroenPreamble = "1001100110011010"
const citroenPayloadBytes = 8

func (citroen) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, citroenPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(citroenPreamble)

	dst := make([]byte, citroenPayloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, citroenPayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < citroenPayloadBytes*8 {
		return false
	}
	if allZero(dst) {
		return false
	}
	if checksum.CRC8(dst[0:7], 0x00, 0x07) != dst[7] {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", dst[0:4], 8)
	out.FieldSet.AddFloat("Pressure kpa", float64(dst[4])*2.5, 2)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-40)
	return true
}
