/*
 Package dispatcher turns a candidate region of a sample buffer into a
 wide bitmap and runs the decoder registry against it until one accepts.
 The window is widened on both sides of the detected run so a decoder
 can lock onto a preamble that starts slightly before or after it.
*/
package dispatcher

import (
	"github.com/n8jr/tpmsd/bitmap"
	"github.com/n8jr/tpmsd/buffer"
	"github.com/n8jr/tpmsd/decoders"
	"github.com/n8jr/tpmsd/linecode"
)

// workingBitmapBytes is the fixed size of the widened bitmap every decode
// attempt runs against.
const workingBitmapBytes = 4096

// preambleLookback and tailPad widen the NRZ expansion window around the
// run the scanner detected, so a preamble that starts slightly before or
// after the run is still visible to every decoder.
const preambleLookback = 32
const tailPad = 100

// DecodeSignal expands sampleCount pulses from buf (already centered by
// the scanner around the candidate run) into a working bitmap, then tries
// every registered decoder in order until one succeeds. On success it
// fills outInfo's Bits with a freshly allocated copy of the matched span
// and returns true. The working bitmap is local to this call and is
// always discarded on return, success or not.
func DecodeSignal(buf *buffer.SampleBuffer, sampleCount int, outInfo *decoders.MessageInfo) bool {
	working := make([]byte, workingBitmapBytes)
	bitsWritten := linecode.ConvertSignalToBits(
		working, workingBitmapBytes, buf,
		-preambleLookback, sampleCount+preambleLookback+tailPad,
		buf.ShortPulseDurUS,
	)
	if bitsWritten == 0 {
		return false
	}

	for _, d := range decoders.Registry {
		if !d.Decode(working, workingBitmapBytes, bitsWritten, outInfo) {
			continue
		}
		outInfo.DecoderName = d.Name()
		if outInfo.PulsesCount > 0 {
			payloadBytes := (outInfo.PulsesCount + 7) / 8
			payload := make([]byte, payloadBytes)
			bitmap.Copy(payload, payloadBytes*8, 0, working, workingBitmapBytes*8, outInfo.StartOffsetBits, outInfo.PulsesCount)
			outInfo.Bits = payload
		}
		return true
	}
	return false
}
