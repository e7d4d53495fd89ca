package dispatcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n8jr/tpmsd/bitmap"
	"github.com/n8jr/tpmsd/buffer"
	"github.com/n8jr/tpmsd/decoders"
	"github.com/n8jr/tpmsd/dispatcher"
	"github.com/n8jr/tpmsd/linecode"
)

// stubDecoder lets tests control dispatch order and success without
// pulling in a real protocol decoder.
type stubDecoder struct {
	name      string
	accept    bool
	start     int
	pulses    int
	fieldName string
}

func (s *stubDecoder) Name() string { return s.name }

func (s *stubDecoder) Decode(src []byte, srcLenBytes, srcLenBits int, out *decoders.MessageInfo) bool {
	if !s.accept {
		return false
	}
	out.StartOffsetBits = s.start
	out.PulsesCount = s.pulses
	out.FieldSet.AddStr(s.fieldName, "ok")
	return true
}

func withRegistry(t *testing.T, reg []decoders.Decoder, fn func()) {
	t.Helper()
	saved := decoders.Registry
	decoders.Registry = reg
	defer func() { decoders.Registry = saved }()
	fn()
}

func TestDecodeSignalTriesRegistryInOrderAndStopsOnFirstAccept(t *testing.T) {
	first := &stubDecoder{name: "first", accept: false}
	second := &stubDecoder{name: "second", accept: true, start: 8, pulses: 16, fieldName: "Tire ID"}
	third := &stubDecoder{name: "third", accept: true, start: 0, pulses: 8, fieldName: "Tire ID"}

	withRegistry(t, []decoders.Decoder{first, second, third}, func() {
		buf := buffer.Alloc(64)
		buf.ShortPulseDurUS = 100
		for i := 0; i < 40; i++ {
			buf.Append(i%2 == 0, 100)
		}
		var info decoders.MessageInfo
		ok := dispatcher.DecodeSignal(buf, 40, &info)
		assert.True(t, ok)
		assert.Equal(t, "second", info.DecoderName)
		assert.Len(t, info.Bits, 2) // ceil(16/8)
	})
}

func TestDecodeSignalReturnsFalseWhenNoDecoderAccepts(t *testing.T) {
	d := &stubDecoder{name: "never", accept: false}
	withRegistry(t, []decoders.Decoder{d}, func() {
		buf := buffer.Alloc(64)
		buf.ShortPulseDurUS = 100
		for i := 0; i < 40; i++ {
			buf.Append(i%2 == 0, 100)
		}
		var info decoders.MessageInfo
		ok := dispatcher.DecodeSignal(buf, 40, &info)
		assert.False(t, ok)
	})
}

func TestDecodeSignalReturnsFalseWhenShortPulseDurIsZero(t *testing.T) {
	d := &stubDecoder{name: "whatever", accept: true, start: 0, pulses: 8}
	withRegistry(t, []decoders.Decoder{d}, func() {
		buf := buffer.Alloc(64)
		buf.ShortPulseDurUS = 0
		var info decoders.MessageInfo
		ok := dispatcher.DecodeSignal(buf, 40, &info)
		assert.False(t, ok)
	})
}

func TestDecodeSignalPayloadMatchesWorkingBitmapSpan(t *testing.T) {
	d := &stubDecoder{name: "d", accept: true, start: 3, pulses: 5, fieldName: "Tire ID"}
	withRegistry(t, []decoders.Decoder{d}, func() {
		buf := buffer.Alloc(64)
		buf.ShortPulseDurUS = 100
		for i := 0; i < 40; i++ {
			buf.Append(i%2 == 0, 100)
		}
		var info decoders.MessageInfo
		ok := dispatcher.DecodeSignal(buf, 40, &info)
		assert.True(t, ok)
		assert.Len(t, info.Bits, 1) // ceil(5/8)

		// Re-derive the same working bitmap to check the payload span
		// was copied bit-for-bit starting at StartOffsetBits.
		working := make([]byte, 4096)
		n := linecode.ConvertSignalToBits(working, len(working), buf, -32, 40+32+100, buf.ShortPulseDurUS)
		want := bitmap.ToString(nil, working, n, info.StartOffsetBits, info.PulsesCount)
		got := bitmap.ToString(nil, info.Bits, 8, 0, 5)
		assert.Len(t, got, 5)
		assert.Equal(t, string(want), string(got))
	})
}
