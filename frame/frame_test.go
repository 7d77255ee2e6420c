package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccsdsdemod/bitstream"
	"ccsdsdemod/carrier"
	"ccsdsdemod/ccsdserr"
	"ccsdsdemod/ccsdsrs"
	"ccsdsdemod/config"
	"ccsdsdemod/linecode"
	"ccsdsdemod/synth"
	"ccsdsdemod/timing"
)

func asmBytes() []byte {
	return []byte{byte(ASM >> 24), byte(ASM >> 16), byte(ASM >> 8), byte(ASM)}
}

// buildCADU constructs a CADU exactly as a CCSDS transmitter would:
// payload is presented in dual (wire) basis, converted to alpha basis
// for RS encoding, converted back to wire basis, interleaved, then
// scrambled (XOR, so DescrambleBytes doubles as the scrambler) before
// the ASM is prepended. This mirrors what frame.Decoder.Next expects
// to undo. Returns packed bytes (1279); callers that feed a Decoder
// must unpack first, since the decoder operates on the unpacked bit
// stream.
func buildCADU(t *testing.T, payload []byte) []byte {
	t.Helper()
	require.Len(t, payload, DataLen)

	codec := ccsdsrs.NewCodec()
	codewords := make([][]byte, ccsdsrs.InterleaveDepth)
	for i := 0; i < ccsdsrs.InterleaveDepth; i++ {
		var data [ccsdsrs.DataLen]byte
		copy(data[:], payload[i*ccsdsrs.DataLen:(i+1)*ccsdsrs.DataLen])
		alphaData := data
		ccsdsrs.ToAlpha(alphaData[:])
		code := codec.Encode(alphaData)
		ccsdsrs.ToDual(code[:])
		codewords[i] = code[:]
	}
	coded := ccsdsrs.Interleave(codewords, ccsdsrs.InterleaveDepth)
	scrambled := linecode.DescrambleBytes(coded)

	cadu := make([]byte, 0, CADULen)
	cadu = append(cadu, asmBytes()...)
	cadu = append(cadu, scrambled...)
	return cadu
}

func TestFindASMLocatesMarker(t *testing.T) {
	data := bitstream.Unpack(append([]byte{0x00, 0x11, 0x22}, asmBytes()...))
	pos, ok := FindASM(data, 0)
	require.True(t, ok)
	assert.Equal(t, 3*8, pos)
}

// S3 (spec.md §8): an ASM preceded by a run of 40 zero bits is found
// at bit offset 40, and an incomplete frame is reported when fewer
// than 10232 bits follow it.
func TestFindASMAfterLeadingZeroBitsS3(t *testing.T) {
	var bits []byte
	bits = append(bits, make([]byte, 40)...)
	bits = append(bits, bitstream.Unpack(asmBytes())...)
	bits = append(bits, make([]byte, 10000)...)

	d := NewDecoder(bits)
	f, ok := d.Next()
	require.True(t, ok)
	assert.Equal(t, 40, f.Offset)
	assert.False(t, f.OK)
	assert.ErrorIs(t, f.Err, ccsdserr.ErrFrameIncomplete)

	_, ok = d.Next()
	assert.False(t, ok)
}

func TestDecoderDecodesCleanFrame(t *testing.T) {
	payload := make([]byte, DataLen)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	bits := bitstream.Unpack(buildCADU(t, payload))

	d := NewDecoder(bits)
	f, ok := d.Next()
	require.True(t, ok)
	assert.True(t, f.OK)
	assert.Equal(t, payload, f.Data)
	assert.Equal(t, 0, f.Corrections)

	_, ok = d.Next()
	assert.False(t, ok)
}

func TestDecoderCorrectsErrorsInOneCodeword(t *testing.T) {
	payload := make([]byte, DataLen)
	for i := range payload {
		payload[i] = byte(255 - i)
	}
	cadu := buildCADU(t, payload)

	// Corrupt two bytes within the coded region (after the ASM).
	cadu[ASMLen+10] ^= 0xFF
	cadu[ASMLen+20] ^= 0x0F

	d := NewDecoder(bitstream.Unpack(cadu))
	f, ok := d.Next()
	require.True(t, ok)
	assert.True(t, f.OK)
	assert.Equal(t, payload, f.Data)
	assert.Greater(t, f.Corrections, 0)
}

func TestDecoderReportsIncompleteFrameAtEndOfStream(t *testing.T) {
	bits := bitstream.Unpack(append(asmBytes(), make([]byte, 10)...))
	d := NewDecoder(bits)
	f, ok := d.Next()
	require.True(t, ok)
	assert.False(t, f.OK)
	assert.ErrorIs(t, f.Err, ccsdserr.ErrFrameIncomplete)
}

// rectStaggeredOQPSK builds a zero-ISI OQPSK baseband at sps samples
// per symbol: the I arm is a rectangular pulse train sampling each
// symbol's real component, the Q arm the same for the imaginary
// component, delayed by half a symbol — the offset stagger that gives
// OQPSK its name and that timing.Run's OQPSK branch (I at idx, Q at
// idx+sps/2) expects on its input. The Q arm's lead-in is backfilled
// with symbol 0's own value rather than left at zero: a bare zero
// there is an artificial (I, Q) = (+-1, 0) sample the Costas error
// term sees as a real zero crossing, kicking the carrier loop's
// frequency estimate away from zero before any data has actually
// arrived.
func rectStaggeredOQPSK(symbols []complex64, sps int) []complex64 {
	half := sps / 2
	n := len(symbols) * sps
	sig := make([]complex64, n+half)
	for i, z := range symbols {
		for j := 0; j < sps; j++ {
			sig[i*sps+j] += complex64(complex(real(z), 0))
		}
	}
	for k := 0; k < half; k++ {
		sig[k] += complex64(complex(0, imag(symbols[0])))
	}
	for i, z := range symbols {
		for j := 0; j < sps; j++ {
			sig[i*sps+j+half] += complex64(complex(0, imag(z)))
		}
	}
	return sig
}

// S6 (spec.md §8): a synthetic OQPSK baseband at 4 samples/symbol
// carrying 100 known CADUs back-to-back, with no noise and no
// frequency offset, must decode to 100 TM OK and 0 TM BAD end to end —
// preprocessed bits through the carrier loop, timing loop, slicer,
// NRZ-M decode, and finally frame sync/RS. The CADUs are chained
// back to back, so each sync word starts at a multiple of 10232 bits
// and is byte aligned in the recovered stream.
func TestEndToEndOQPSKHundredFramesS6(t *testing.T) {
	const sps = 4
	const numFrames = 100

	var txBits []byte
	for f := 0; f < numFrames; f++ {
		payload := make([]byte, DataLen)
		for i := range payload {
			payload[i] = byte((f*131 + i*7) ^ 0x5A)
		}
		cadu := buildCADU(t, payload)
		txBits = append(txBits, bitstream.Unpack(cadu)...)
	}

	// Trailing idle padding: timing.Run's loop bound (idx < N-sps-5)
	// stops a few symbols short of the literal end of the baseband, so
	// without this the very last CADU would be reported incomplete
	// rather than decoded.
	txBits = append(txBits, make([]byte, 4*CADUBits)...)

	// NRZ-M encode the whole concatenated stream with one persistent
	// state, exactly as a real transmitter's differential encoder
	// would carry its seed across frame boundaries.
	encoded := make([]byte, len(txBits))
	copy(encoded, txBits)
	linecode.NewState().Encode(encoded)

	syms := synth.BitsToOQPSK(encoded)
	sig := rectStaggeredOQPSK(syms, sps)

	cfg := config.Default()
	despun := carrier.Run(sig, config.ModeOQPSK, cfg.CostasAlpha, cfg.CostasBeta)
	timed := timing.Run(despun, config.ModeOQPSK, float32(sps), cfg.TimingAlpha, cfg.TimingBeta)
	require.False(t, timed.Watchdog)
	require.False(t, timed.Diverged)

	// Mirror synth.BitsToOQPSK's bit-pair convention exactly (msb=0 ->
	// re=+1, lsb=0 -> im=+1): a reversed polarity would globally
	// complement the recovered stream, which NRZ-M decode only
	// self-corrects from bit index 1 onward, corrupting frame 0's ASM.
	rxBits := make([]byte, len(timed.Symbols)*2)
	for i, z := range timed.Symbols {
		if real(z) <= 0 {
			rxBits[i*2] = 1
		}
		if imag(z) <= 0 {
			rxBits[i*2+1] = 1
		}
	}
	linecode.NewState().Decode(rxBits)

	dec := NewDecoder(rxBits)
	good, bad := 0, 0
	for {
		f, ok := dec.Next()
		if !ok {
			break
		}
		switch {
		case f.OK:
			good++
		case f.Err == ccsdserr.ErrFrameIncomplete:
			// tail of the run, not a failed frame
		default:
			bad++
		}
	}

	assert.Equal(t, numFrames, good)
	assert.Equal(t, 0, bad)
}
