// Package synth synthesizes test baseband signals: it maps bits to
// OQPSK/BPSK constellation points and pulse-shapes them through an RRC
// filter, for use by scenario and property tests that need a known
// input instead of a captured file. Grounded on the teacher's
// consts.QPSKSymbolMap (the same Gray-coded bits-to-point idea,
// adapted to CCSDS's receive-side needs and BPSK) and
// dvbs.StreamToIQ's symbol-to-IQ upsampling pump
// (rrcFilter.Process(symbols)).
package synth

import (
	"ccsdsdemod/config"
	"ccsdsdemod/firgen"
)

// symbolMap is the Gray-coded OQPSK constellation: two bits select
// one of four points at +-1 on each axis.
var symbolMap = [4]complex64{
	0: complex64(complex(1, 1)),
	1: complex64(complex(1, -1)),
	2: complex64(complex(-1, 1)),
	3: complex64(complex(-1, -1)),
}

// BitsToOQPSK maps an unpacked bit sequence (spec.md's bit-sequence
// representation, one 0/1 value per byte) to OQPSK symbols, two bits
// per symbol, MSB first; a trailing odd bit is dropped.
func BitsToOQPSK(bits []byte) []complex64 {
	n := len(bits) / 2
	syms := make([]complex64, n)
	for i := 0; i < n; i++ {
		idx := bits[i*2]<<1 | bits[i*2+1]
		syms[i] = symbolMap[idx]
	}
	return syms
}

// BitsToBPSK maps an unpacked bit sequence to +-1 BPSK symbols.
func BitsToBPSK(bits []byte) []complex64 {
	syms := make([]complex64, len(bits))
	for i, b := range bits {
		if b != 0 {
			syms[i] = 1
		} else {
			syms[i] = -1
		}
	}
	return syms
}

// Upsample repeats each symbol sps times to build a rectangular
// baseband signal, then shapes it with an RRC filter matched to the
// given sample/symbol rate pair — the test-side mirror of
// preprocess.Run's RRC stage, used to synthesize a signal the carrier
// and timing loops can lock onto.
func Upsample(symbols []complex64, sps int, sampleRateHz, symbolRateHz float64, rollOff float64, spanSymbols int) []complex64 {
	sig := make([]complex64, len(symbols)*sps)
	for i, z := range symbols {
		for j := 0; j < sps; j++ {
			sig[i*sps+j] = z
		}
	}
	taps := firgen.RRC(sampleRateHz, symbolRateHz, rollOff, spanSymbols)
	return firgen.Convolve(sig, taps)
}

// Baseband is a convenience wrapper combining BitsToOQPSK/BitsToBPSK
// and Upsample for the given mode.
func Baseband(bits []byte, mode config.Mode, sps int, sampleRateHz, symbolRateHz float64, rollOff float64, spanSymbols int) []complex64 {
	var syms []complex64
	if mode == config.ModeBPSK {
		syms = BitsToBPSK(bits)
	} else {
		syms = BitsToOQPSK(bits)
	}
	return Upsample(syms, sps, sampleRateHz, symbolRateHz, rollOff, spanSymbols)
}
