package ccsdsrs

// Encode is a test/tooling-support systematic RS(255,223) encoder. It
// is never used on the live decode path (the decoder only ever
// corrects codewords produced by a real transmitter); it exists so
// property tests (spec invariant 5, scenario S5) can synthesize valid
// codewords to corrupt and then hand to Decode. Grounded on
// original_source/ccsds/_check_rs.c's RS255_223, generalized from its
// fixed interleave-depth loop to a single 223-byte block.
//
// github.com/klauspost/reedsolomon (the teacher's FEC dependency)
// cannot serve this role: its erasure-coding API builds MDS matrices
// over an arbitrary field and has no notion of fcr/prim/dual-basis, so
// it cannot reproduce the CCSDS generator polynomial bit-for-bit. See
// DESIGN.md for the full justification.
func (c *Codec) Encode(data [dataLen]byte) [codeLen]byte {
	var parity [nroots]byte
	for _, d := range data {
		feedback := gfLogTable[d^parity[nroots-1]]
		for j := nroots - 1; j > 0; j-- {
			if c.genPoly[j] != noSym && feedback != noSym {
				parity[j] = parity[j-1] ^ gfExpTable[modnn(int(c.genPoly[j])+int(feedback))]
			} else {
				parity[j] = parity[j-1]
			}
		}
		if c.genPoly[0] != noSym && feedback != noSym {
			parity[0] = gfExpTable[modnn(int(c.genPoly[0])+int(feedback))]
		} else {
			parity[0] = 0
		}
	}

	var code [codeLen]byte
	copy(code[:dataLen], data[:])
	// parity[nroots-1] is the highest-degree remainder coefficient; the
	// codeword is laid out highest degree first, as Decode expects.
	for i := 0; i < nroots; i++ {
		code[dataLen+i] = parity[nroots-1-i]
	}
	return code
}

// DataLen and CodeLen expose the RS(255,223) block sizes.
const (
	DataLen = dataLen
	CodeLen = codeLen
)

// Deinterleave splits a 1275-byte payload+parity block into the five
// independent 255-byte RS codewords the CCSDS TM interleave-5 format
// produces: codeword i is the sub-sequence of bytes at offsets
// i, i+depth, i+2*depth, ....
func Deinterleave(block []byte, depth int) [][]byte {
	codewords := make([][]byte, depth)
	n := len(block) / depth
	for i := 0; i < depth; i++ {
		cw := make([]byte, n)
		for j := 0; j < n; j++ {
			cw[j] = block[j*depth+i]
		}
		codewords[i] = cw
	}
	return codewords
}

// Interleave is the inverse of Deinterleave: it writes depth
// codewords of equal length back into a single interleaved block.
func Interleave(codewords [][]byte, depth int) []byte {
	n := len(codewords[0])
	block := make([]byte, n*depth)
	for i := 0; i < depth; i++ {
		for j := 0; j < n; j++ {
			block[j*depth+i] = codewords[i][j]
		}
	}
	return block
}
