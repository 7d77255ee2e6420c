package linecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNRZMRoundTrip(t *testing.T) {
	bits := []byte{1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1}
	encoded := Encode(bits)
	decoded := Decode(encoded)
	assert.Equal(t, bits, decoded)
}

// Whole-buffer seed carry: decoding a stream in two chunks through a
// persistent State must equal decoding it in one shot.
func TestNRZMWholeBufferSeedCarryAcrossChunks(t *testing.T) {
	bits := []byte{1, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 0}
	encoded := Encode(bits)

	oneShot := make([]byte, len(encoded))
	copy(oneShot, encoded)
	NewState().Decode(oneShot)

	chunked := make([]byte, len(encoded))
	copy(chunked, encoded)
	st := NewState()
	st.Decode(chunked[:5])
	st.Decode(chunked[5:11])
	st.Decode(chunked[11:])

	assert.Equal(t, oneShot, chunked)
	assert.Equal(t, bits, chunked)
}

func TestLFSRTableMatchesBitGeneration(t *testing.T) {
	l := NewLFSR()
	for i := 0; i < 255; i++ {
		var b byte
		for bit := 0; bit < 8; bit++ {
			b = b<<1 | l.Next()
		}
		assert.Equal(t, descramblerTable[i], b, "byte %d", i)
	}
}

func TestDescrambleSelfInverse(t *testing.T) {
	data := make([]byte, 600)
	for i := range data {
		data[i] = byte(i * 13)
	}
	scrambled := DescrambleBytes(data)
	restored := DescrambleBytes(scrambled)
	assert.Equal(t, data, restored)
}

func TestPassthroughViterbiReturnsCopy(t *testing.T) {
	var v Viterbi = PassthroughViterbi{}
	in := []byte{1, 0, 1, 1}
	out, err := v.Decode(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	out[0] = 9
	assert.NotEqual(t, in[0], out[0])
}
