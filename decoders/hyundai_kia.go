package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// hyundaiKia decodes the generic Hyundai/Kia sensor family (distinct
// from the Elantra2012/Civic-specific decoder): Manchester payload
// validated with CRC-8.
type hyundaiKia struct{}

func (hyundaiKia) Name() string { return "Hyundai/Kia" }

func (hyundaiKia) Meta() Meta {
	return Meta{Preamble: hyundaiKiaPreamble, Payload: "8 bytes", Check: "crc8 poly 0x07"}
}

const hyundaiKiaPreamble = "0110100101011010"
const hyundaiKiaPayloadBytes = 8

func (hyundaiKia) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, hyundaiKiaPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(hyundaiKiaPreamble)

	dst := make([]byte, hyundaiKiaPayloadBytes)
	decoded := linecode.ConvertFromLineCode(dst, hyundaiKiaPayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < hyundaiKiaPayloadBytes*8 {
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
	out.FieldSet.AddFloat("Pressure kpa", float64(dst[4])+60, 0)
	out.FieldSet.AddInt("Temperature C", int64(dst[5])-50)
	return true
}
