package synth

import "ccsdsdemod/utils"

// ConvEncode is a rate-1/2, K=7 convolutional encoder with generator
// polynomials 0x4F/0x6D — the exact code spec.md §6 names for the
// external Viterbi decoder collaborator. It exists only to build test
// fixtures for linecode.Viterbi plumbing (the decoder itself stays
// external per spec.md §1's Non-goals). Adapted directly from the
// teacher's dvbs.DVBSEncoder.ConvolutionalEncode: same bit-reversed
// generator polynomials and left-shifting 7-bit delay register, but
// operating on an unpacked bit sequence instead of a fixed
// DVB-S-packet-sized byte slice.
func ConvEncode(bits []byte) []byte {
	const g1 = 0x4F
	const g2 = 0x6D

	out := make([]byte, len(bits)*2)
	delay := uint16(0)
	for i, bit := range bits {
		delay = ((delay << 1) | uint16(bit)) & 0x7F
		out[i*2] = utils.Parity(delay & g1)
		out[i*2+1] = utils.Parity(delay & g2)
	}
	return out
}
