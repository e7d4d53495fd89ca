package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n8jr/tpmsd/checksum"
)

func TestCRC8EmptyIsInit(t *testing.T) {
	assert.Equal(t, byte(0x00), checksum.CRC8(nil, 0x00, 0x07))
}

func TestCRC8StandardCheckValue(t *testing.T) {
	data := []byte("123456789")
	assert.Equal(t, byte(0xF4), checksum.CRC8(data, 0x00, 0x07))
}

func TestCRC16ZerosReduceDeterministically(t *testing.T) {
	data := make([]byte, 8)
	got1 := checksum.CRC16(data, 0xFFFF, 0x1021)
	got2 := checksum.CRC16(data, 0xFFFF, 0x1021)
	assert.Equal(t, got1, got2)
}

func TestSumBytesWrapsModulo256(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0x02}
	assert.Equal(t, byte(0x00), checksum.SumBytes(data, 0x00))
}

func TestXorBytes(t *testing.T) {
	data := []byte{0x0F, 0xF0, 0xFF}
	assert.Equal(t, byte(0x00), checksum.XorBytes(data, 0x00))
}
