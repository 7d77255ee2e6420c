// Package utils holds small stateless helpers shared across the
// demodulator. Kept from the teacher's utils package; LogFFmpeg was
// dropped (this pipeline has no FFmpeg subprocess to tee logs from),
// Parity is kept and reused by synth's convolutional-encoder test
// fixture.
package utils

// Parity returns 1 if the number of set bits is odd, else 0.
func Parity(n uint16) byte {
	n ^= n >> 8
	n ^= n >> 4
	n ^= n >> 2
	n ^= n >> 1
	return byte(n & 1)
}