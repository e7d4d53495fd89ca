package linecode_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n8jr/tpmsd/bitmap"
	"github.com/n8jr/tpmsd/buffer"
	"github.com/n8jr/tpmsd/linecode"
)

func TestConvertSignalToBitsRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	const unit = uint32(50)

	b := buffer.Alloc(256)
	var wantBits []bool
	for i := 0; i < 64; i++ {
		bit := r.Intn(2) == 1
		wantBits = append(wantBits, bit)
		b.Append(bit, unit)
	}

	dst := make([]byte, 16)
	n := linecode.ConvertSignalToBits(dst, len(dst), b, 0, 64, unit)
	assert.Equal(t, 64, n)
	for i, want := range wantBits {
		assert.Equal(t, want, bitmap.Get(dst, n, i), "bit %d", i)
	}
}

func TestConvertSignalToBitsZeroUnit(t *testing.T) {
	b := buffer.Alloc(4)
	b.Append(true, 10)
	dst := make([]byte, 4)
	n := linecode.ConvertSignalToBits(dst, len(dst), b, 0, 1, 0)
	assert.Equal(t, 0, n)
}

func TestConvertSignalToBitsNegativeStart(t *testing.T) {
	b := buffer.Alloc(8)
	for i := 0; i < 8; i++ {
		b.Append(i%2 == 0, 10)
	}
	dst := make([]byte, 4)
	// Negative start relies on the ring buffer's modular indexing.
	n := linecode.ConvertSignalToBits(dst, len(dst), b, -8, 8, 10)
	assert.Equal(t, 8, n)
}

func manchesterEncode(bits []bool) string {
	s := make([]byte, 0, len(bits)*2)
	for _, b := range bits {
		if b {
			s = append(s, '1', '0')
		} else {
			s = append(s, '0', '1')
		}
	}
	return string(s)
}

func TestConvertFromLineCodeReversesManchester(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	var want []bool
	for i := 0; i < 40; i++ {
		want = append(want, r.Intn(2) == 1)
	}
	encoded := manchesterEncode(want)
	src := make([]byte, (len(encoded)+7)/8)
	bitmap.SetPattern(src, len(encoded), 0, encoded)

	dst := make([]byte, 8)
	n := linecode.ConvertFromLineCode(dst, len(dst), src, len(src), 0, "01", "10")
	assert.Equal(t, len(want), n)
	for i, w := range want {
		assert.Equal(t, w, bitmap.Get(dst, n, i))
	}
}

// diffManchesterEncode produces the reference encoding the sliding
// decoder expects: no start transition = 1, start transition = 0, and a
// mid-bit transition is always present.
func diffManchesterEncode(bits []bool) []bool {
	state := false // arbitrary bootstrap level
	levels := []bool{state}
	for _, bit := range bits {
		mid := !state // mid-bit transition is mandatory
		var next bool
		if bit {
			next = mid // no start transition -> 1
		} else {
			next = !mid // start transition -> 0
		}
		levels = append(levels, mid, next)
		state = next
	}
	return levels
}

func TestDiffManchesterDecodeReversesReferenceEncoding(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	var want []bool
	for i := 0; i < 30; i++ {
		want = append(want, r.Intn(2) == 1)
	}
	levels := diffManchesterEncode(want)
	src := make([]byte, (len(levels)+7)/8)
	for i, lv := range levels {
		bitmap.Set(src, len(levels), i, lv)
	}

	dst := make([]byte, 8)
	n := linecode.DiffManchesterDecode(dst, len(dst), src, len(src), 0, len(want))
	assert.Equal(t, len(want), n)
	for i, w := range want {
		assert.Equal(t, w, bitmap.Get(dst, n, i), "bit %d", i)
	}
}

func TestConvertFromDiffManchesterPairwise(t *testing.T) {
	// Source bits of 0b11001010 (MSB first) with a false seed. Each
	// output bit compares the carried bit with the next source bit:
	// equal -> 1, transition -> 0, and the source bit becomes the
	// carry for the next pair.
	src := []byte{0b11001010}
	dst := make([]byte, 1)
	n := linecode.ConvertFromDiffManchester(dst, len(dst), src, 1, 0, false)
	assert.Equal(t, 8, n)
	want := []bool{false, true, false, true, false, false, false, false}
	for i, w := range want {
		assert.Equal(t, w, bitmap.Get(dst, n, i), "bit %d", i)
	}
}

func TestConvertFromDiffManchesterSeedsCarryFromPrevious(t *testing.T) {
	// The first output bit depends only on the seed versus the first
	// source bit, so flipping previous must flip it.
	src := []byte{0b10000000}
	dst := make([]byte, 1)

	n := linecode.ConvertFromDiffManchester(dst, len(dst), src, 1, 0, true)
	assert.Equal(t, 8, n)
	assert.True(t, bitmap.Get(dst, n, 0))

	n = linecode.ConvertFromDiffManchester(dst, len(dst), src, 1, 0, false)
	assert.Equal(t, 8, n)
	assert.False(t, bitmap.Get(dst, n, 0))
}
