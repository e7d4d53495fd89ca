package decoders

import "github.com/n8jr/tpmsd/linecode"

// schraderSMD3MA4 decodes the Schrader SMD3MA4 sensor: Manchester
// ("01"=0, "10"=1) after the 12-bit tail of its preamble, a 39-bit
// payload with no checksum beyond an all-zero rejection, and no
// temperature field.
type schraderSMD3MA4 struct{}

func (schraderSMD3MA4) Name() string { return "Schrader SMD3MA4" }

func (schraderSMD3MA4) Meta() Meta {
	return Meta{Preamble: schraderSMD3MA4Preamble, Payload: "39 bits", Check: "pressure range"}
}

const schraderSMD3MA4Preamble = "010101011110"
const schraderSMD3MA4PayloadBits = 39
const schraderSMD3MA4PayloadBytes = 5 // ceil(39/8)

func (schraderSMD3MA4) Decode(src []byte, srcLenBytes, srcLenBits int, out *MessageInfo) bool {
	p := seekPreamble(src, srcLenBits, schraderSMD3MA4Preamble)
	if p < 0 {
		return false
	}
	fieldStart := p + len(schraderSMD3MA4Preamble)

	var decodedBits [schraderSMD3MA4PayloadBytes]byte
	decoded := linecode.ConvertFromLineCode(decodedBits[:], schraderSMD3MA4PayloadBytes, src, srcLenBytes, fieldStart, "01", "10")
	if decoded < schraderSMD3MA4PayloadBits {
		return false
	}

	payload := packBits(decodedBits[:], schraderSMD3MA4PayloadBytes*8, schraderSMD3MA4PayloadBits, schraderSMD3MA4PayloadBytes)
	if allZero(payload) {
		return false
	}

	pressureRaw := payload[0]
	psi := float64(pressureRaw) * 0.2
	if psi < 0 || psi > 100 {
		return false
	}

	out.StartOffsetBits = p
	out.PulsesCount = pulsesCountFromOffsets(fieldStart, decoded, p)
	out.FieldSet.AddBytes("Tire ID", payload[1:5], 8)
	out.FieldSet.AddFloat("Pressure psi", psi, 1)
	return true
}
