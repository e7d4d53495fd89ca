package decoders

import (
	"github.com/n8jr/tpmsd/checksum"
	"github.com/n8jr/tpmsd/linecode"
)

// toyotaPMV107J decodes the Toyota/Lexus PMV-107J sensor: differential
// Manchester (sliding form) after a 6-bit preamble, into a 9-byte
// payload. The sliding decoder fills all 9 bytes (72 bits) directly;
// the checksum, the b5^b6 complement rule, and the byte-offset field
// formulas all operate on that byte-aligned view.
type toyotaPMV107J struct{}

func (toyotaPMV107J) Name() string { return "Toyota PMV-107J" }

func (toyotaPMV107J) Meta() Meta {
	return Meta{Preamble: toyotaPMV107JPreamble, Payload: "9 bytes", Check: "crc8 poly 0x13"}
}

const toyotaPMV107JPreamble = "111110"
const toyotaPMV107JPayloadBytes = 9
const toyotaPMV107JPayloadBits = toyotaPMV107JPayloadBytes * 8

func (toyotaPMV107J) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	if srcLenBits < len(toyotaPMV107JPreamble)+toyotaPMV107JPayloadBits {
		return false
	}
	p := seekPreamble(src, srcLenBits, toyotaPMV107JPreamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(toyotaPMV107JPreamble)

	payload := make([]byte, toyotaPMV107JPayloadBytes)
	decoded := linecode.DiffManchesterDecode(payload, toyotaPMV107JPayloadBytes, src, srcLenBytes, fieldStart, toyotaPMV107JPayloadBits)
	if decoded < toyotaPMV107JPayloadBits {
		return false
	}
	if allZero(payload) {
		return false
	}
	if checksum.CRC8(payload[0:8], 0x00, 0x13) != payload[8] {
		return false
	}
	if payload[5]^payload[6] != 0xFF {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", payload[0:4], 8)
	out.FieldSet.AddFloat("Pressure kpa", (float64(payload[5])-40)*2.48, 2)
	out.FieldSet.AddInt("Temperature C", int64(payload[7])-40)
	return true
}
