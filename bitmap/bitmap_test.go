package bitmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n8jr/tpmsd/bitmap"
)

func TestGetSetRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	buf := make([]byte, 16)
	blen := 128
	for trial := 0; trial < 500; trial++ {
		pos := r.Intn(blen)
		val := r.Intn(2) == 1
		before := make([]byte, len(buf))
		copy(before, buf)

		bitmap.Set(buf, blen, pos, val)
		assert.Equal(t, val, bitmap.Get(buf, blen, pos))

		for p := 0; p < blen; p++ {
			if p == pos {
				continue
			}
			assert.Equal(t, bitmap.Get(before, blen, p), bitmap.Get(buf, blen, p), "bit %d changed unexpectedly", p)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	buf := make([]byte, 2)
	assert.False(t, bitmap.Get(buf, 16, -1))
	assert.False(t, bitmap.Get(buf, 16, 16))
}

func TestCopyBitExactAllAlignments(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		srcLen := 8 + r.Intn(64)
		src := make([]byte, (srcLen+7)/8)
		r.Read(src)

		sOff := r.Intn(srcLen / 2)
		maxCount := srcLen - sOff
		if maxCount < 1 {
			maxCount = 1
		}
		count := 1 + r.Intn(maxCount)
		dOff := r.Intn(8)
		dLen := dOff + count + 8
		dst := make([]byte, (dLen+7)/8)

		bitmap.Copy(dst, dLen, dOff, src, srcLen, sOff, count)

		assert.True(t, bitmap.MatchRange(dst, dLen, dOff, src, srcLen, sOff, count),
			"trial %d: sOff=%d dOff=%d count=%d", trial, sOff, dOff, count)
	}
}

func TestCopyAlignedFastPath(t *testing.T) {
	src := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	dst := make([]byte, 4)
	bitmap.Copy(dst, 32, 0, src, 32, 0, 32)
	assert.Equal(t, src, dst)
}

func TestSeekBitsFindsSmallestMatch(t *testing.T) {
	buf := make([]byte, 4)
	bitmap.SetPattern(buf, 32, 5, "1010")
	bitmap.SetPattern(buf, 32, 20, "1010")
	pos := bitmap.SeekBits(buf, 32, 0, 32, "1010")
	assert.Equal(t, 5, pos)
}

func TestSeekBitsNotFound(t *testing.T) {
	buf := make([]byte, 4)
	pos := bitmap.SeekBits(buf, 32, 0, 32, "1111")
	assert.Equal(t, bitmap.NotFound, pos)
}

func TestMatchBitsRejectsOverflow(t *testing.T) {
	buf := make([]byte, 1)
	assert.False(t, bitmap.MatchBits(buf, 4, 0, "00000"))
}

func TestToStringAndSetPatternRoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	bitmap.SetPattern(buf, 16, 0, "1100101100110011")
	dump := bitmap.ToString(nil, buf, 16, 0, 16)
	assert.Equal(t, "1100101100110011", string(dump))
}

func TestReverseBits(t *testing.T) {
	buf := []byte{0b10000001, 0b11110000}
	bitmap.ReverseBits(buf, len(buf))
	assert.Equal(t, byte(0b10000001), buf[0])
	assert.Equal(t, byte(0b00001111), buf[1])
}
