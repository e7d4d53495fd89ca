package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// elantra2012Civic decodes the Hyundai Elantra 2012 / Honda Civic sensor:
// ideal Manchester ("01"=0, "10"=1) after a 16-bit preamble.
type elantra2012Civic struct{}

func (elantra2012Civic) Name() string { return "Elantra2012/Civic" }

func (elantra2012Civic) Meta() Meta {
	return Meta{Preamble: elantraPreamble, Payload: "8 bytes", Check: "crc8 poly 0x07"}
}

const elantraPreamble = "0111000101010101" // 0x7155
const elantraPayloadBytes = 8

func (elantra2012Civic) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	if srcLenBits < len(elantraPreamble)+elantraPayloadBytes*8*2 {
		return false
	}
	p := seekPreamble(src, srcLenBits, elantraPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(elantraPreamble)

	var payload [elantraPayloadBytes]byte
	decoded := linecode.ConvertFromLineCode(payload[:], elantraPayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < elantraPayloadBytes*8 {
		return false
	}
	if allZero(payload[:]) {
		return false
	}
	if checksum.CRC8(payload[0:7], 0x00, 0x07) != payload[7] {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", payload[2:6], 8)
	out.FieldSet.AddFloat("Pressure kpa", float64(payload[0])+60, 0)
	out.FieldSet.AddInt("Temperature C", int64(payload[1])-50)
	return true
}
