package bitstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpackMSBFirst(t *testing.T) {
	bits := Unpack([]byte{0xA5}) // 1010 0101
	assert.Equal(t, []byte{1, 0, 1, 0, 0, 1, 0, 1}, bits)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	data := []byte{0x1A, 0xCF, 0xFC, 0x1D}
	bits := Unpack(data)
	back := Pack(bits)
	assert.Equal(t, data, back)
}

func TestPackPadsTrailingPartialByte(t *testing.T) {
	bits := []byte{1, 1, 1, 1}
	packed := Pack(bits)
	assert.Equal(t, []byte{0xF0}, packed)
}
