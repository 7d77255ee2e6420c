// Package ccsdsrs implements the CCSDS RS(255,223) Reed-Solomon code:
// Berlekamp-Massey error-locator search, Chien root search and Forney
// error-magnitude correction, operating over the dual-basis field used
// on the CCSDS downlink. The algorithm is the classic Phil Karn (KA9Q)
// general-purpose decoder, ported from
// original_source/ccsds/rs/decode_rs_char.c, with the GF tables fixed
// to the CCSDS parameters (fcr=112, prim=11, nroots=32) instead of
// being rederived from a generator-polynomial constant at init time.
package ccsdsrs

import "fmt"

// noSym is the "no symbol" sentinel Karn's decoder uses in index form
// (rs->nn in the C source).
const noSym = fieldSize

// Codec holds the immutable CCSDS RS(255,223) parameters and tables.
// A Codec is safe for concurrent use by multiple goroutines: all of
// its state is read-only after construction.
type Codec struct {
	genPoly [nroots + 1]byte // generator polynomial, index form
}

// NewCodec builds the CCSDS RS(255,223) codec: symbol width 8,
// fcr=112, prim=11, nroots=32, generator polynomial derived the same
// way INIT_RS does in original_source/ccsds/rs/init_rs.c.
func NewCodec() *Codec {
	c := &Codec{}
	c.genPoly[0] = 1
	root := fcr * prim
	for i := 0; i < nroots; i++ {
		c.genPoly[i+1] = 1
		// multiply genPoly by (x + alpha^(fcr+i)*prim)
		for j := i; j > 0; j-- {
			if c.genPoly[j] != 0 {
				c.genPoly[j] = c.genPoly[j-1] ^ gfExpTable[modnn(int(gfLogTable[c.genPoly[j]])+root)]
			} else {
				c.genPoly[j] = c.genPoly[j-1]
			}
		}
		c.genPoly[0] = gfExpTable[modnn(int(gfLogTable[c.genPoly[0]])+root)]
		root += prim
	}
	// convert to index form
	for i := range c.genPoly {
		c.genPoly[i] = gfLogTable[c.genPoly[i]]
	}
	return c
}

func modnn(x int) int {
	for x >= fieldSize {
		x -= fieldSize
		x = (x >> symbolWidth) + (x & fieldSize)
	}
	return x
}

// ToAlpha converts a 255-byte dual-basis (wire) codeword into its
// alpha-basis representation, in place.
func ToAlpha(block []byte) {
	for i, b := range block {
		block[i] = dualToAlpha[b]
	}
}

// ToDual converts a 255-byte alpha-basis codeword back to the
// dual-basis (wire) representation, in place.
func ToDual(block []byte) {
	for i, b := range block {
		block[i] = alphaToDual[b]
	}
}

// Decode corrects a single 255-byte RS(255,223) codeword, given in
// alpha-basis representation (ToAlpha must be applied first, ToDual
// after). It returns the number of corrected symbols, or an error if
// the block is uncorrectable. No erasures are supported (errors-only,
// per spec §1 Non-goals).
func (c *Codec) Decode(block []byte) (int, error) {
	if len(block) != codeLen {
		return 0, fmt.Errorf("ccsdsrs: codeword must be %d bytes, got %d", codeLen, len(block))
	}

	var s [nroots]byte
	// form the syndromes: evaluate block(x) at the roots of g(x)
	for i := 0; i < nroots; i++ {
		s[i] = block[0]
	}
	for j := 1; j < fieldSize; j++ {
		for i := 0; i < nroots; i++ {
			if s[i] == 0 {
				s[i] = block[j]
			} else {
				s[i] = block[j] ^ gfExpTable[modnn(int(gfLogTable[s[i]])+(fcr+i)*prim)]
			}
		}
	}

	synError := byte(0)
	for i := 0; i < nroots; i++ {
		synError |= s[i]
		s[i] = gfLogTable[s[i]]
	}
	if synError == 0 {
		// Codeword is already valid.
		return 0, nil
	}

	var lambda [nroots + 1]byte
	lambda[0] = 1

	var b [nroots + 1]byte
	for i := 0; i < nroots+1; i++ {
		b[i] = gfLogTable[lambda[i]]
	}

	// Berlekamp-Massey
	var t [nroots + 1]byte
	r, el := 0, 0
	for {
		r++
		if r > nroots {
			break
		}
		var discrR byte
		for i := 0; i < r; i++ {
			if lambda[i] != 0 && s[r-i-1] != noSym {
				discrR ^= gfExpTable[modnn(int(gfLogTable[lambda[i]])+int(s[r-i-1]))]
			}
		}
		discrRIdx := gfLogTable[discrR]
		if discrRIdx == noSym {
			copy(b[1:], b[:nroots])
			b[0] = noSym
		} else {
			t[0] = lambda[0]
			for i := 0; i < nroots; i++ {
				if b[i] != noSym {
					t[i+1] = lambda[i+1] ^ gfExpTable[modnn(int(discrRIdx)+int(b[i]))]
				} else {
					t[i+1] = lambda[i+1]
				}
			}
			if 2*el <= r-1 {
				el = r - el
				for i := 0; i <= nroots; i++ {
					if lambda[i] == 0 {
						b[i] = noSym
					} else {
						b[i] = byte(modnn(int(gfLogTable[lambda[i]]) - int(discrRIdx) + fieldSize))
					}
				}
			} else {
				copy(b[1:], b[:nroots])
				b[0] = noSym
			}
			lambda = t
		}
	}

	// Convert lambda to index form and find its degree.
	degLambda := 0
	var lambdaIdx [nroots + 1]byte
	for i := 0; i < nroots+1; i++ {
		lambdaIdx[i] = gfLogTable[lambda[i]]
		if lambdaIdx[i] != noSym {
			degLambda = i
		}
	}

	// Chien search for roots of lambda(x).
	var reg [nroots + 1]byte
	copy(reg[1:], lambdaIdx[1:nroots+1])
	var root, loc [nroots]int
	count := 0
	for i, k := 1, iprim-1; i <= fieldSize; i, k = i+1, modnn(k+iprim) {
		q := byte(1)
		for j := degLambda; j > 0; j-- {
			if reg[j] != noSym {
				reg[j] = byte(modnn(int(reg[j]) + j))
				q ^= gfExpTable[reg[j]]
			}
		}
		if q != 0 {
			continue
		}
		root[count] = i
		loc[count] = k
		count++
		if count == degLambda {
			break
		}
	}
	if degLambda != count {
		return 0, fmt.Errorf("ccsdsrs: uncorrectable codeword (degree %d, found %d roots)", degLambda, count)
	}

	// Error evaluator omega(x) = s(x)*lambda(x) mod x^nroots.
	degOmega := degLambda - 1
	var omega [nroots + 1]byte
	for i := 0; i <= degOmega; i++ {
		var tmp byte
		for j := i; j >= 0; j-- {
			if s[i-j] != noSym && lambdaIdx[j] != noSym {
				tmp ^= gfExpTable[modnn(int(s[i-j])+int(lambdaIdx[j]))]
			}
		}
		omega[i] = gfLogTable[tmp]
	}

	// Forney: compute error magnitude at each located position.
	for j := count - 1; j >= 0; j-- {
		var num1 byte
		for i := degOmega; i >= 0; i-- {
			if omega[i] != noSym {
				num1 ^= gfExpTable[modnn(int(omega[i])+i*root[j])]
			}
		}
		num2 := gfExpTable[modnn(root[j]*(fcr-1)+fieldSize)]
		var den byte
		limit := degLambda
		if nroots-1 < limit {
			limit = nroots - 1
		}
		limit &^= 1
		for i := limit; i >= 0; i -= 2 {
			if lambdaIdx[i+1] != noSym {
				den ^= gfExpTable[modnn(int(lambdaIdx[i+1])+i*root[j])]
			}
		}
		if num1 != 0 && loc[j] >= 0 {
			block[loc[j]] ^= gfExpTable[modnn(int(gfLogTable[num1])+int(gfLogTable[num2])+fieldSize-int(gfLogTable[den]))]
		}
	}

	return count, nil
}
