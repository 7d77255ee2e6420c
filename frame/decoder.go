package frame

import (
	"ccsdsdemod/bitstream"
	"ccsdsdemod/ccsdserr"
	"ccsdsdemod/ccsdsrs"
	"ccsdsdemod/linecode"
)

// DataLen is the CCSDS transfer frame payload length carried by one
// CADU: interleave-5 RS(255,223) over 1275 bytes yields 1115 payload
// bytes (223*5) plus 160 parity bytes (32*5).
const DataLen = ccsdsrs.DataLen * ccsdsrs.InterleaveDepth

// CodedLen is the interleaved payload+parity block length following
// the ASM: 255*5.
const CodedLen = ccsdsrs.CodeLen * ccsdsrs.InterleaveDepth

// CADULen is a full CADU's length in bytes: ASM + coded block.
const CADULen = ASMLen + CodedLen

// CADUBits is a full CADU's length in bits (1279*8 = 10232), the unit
// FindASM and Decoder actually advance by — spec.md §4.F's "the next
// 1279*8 = 10232 bits form one frame."
const CADUBits = CADULen * 8

// Frame is one decoded (or failed) CADU.
type Frame struct {
	Offset      int    // bit offset of the ASM in the source stream
	Data        []byte // 1115-byte transfer frame, valid when OK
	Corrections int    // total symbols corrected across all 5 codewords
	OK          bool
	Err         error // ccsdserr.ErrFrameIncomplete or ErrFrameUncorrectable when !OK
}

// Decoder walks an unpacked bit stream (one 0/1 value per byte)
// looking for ASMs and decoding the CADU that follows each one, per
// spec.md §4.F's scanning/found/done state machine: Next returns one
// Frame per call and advances past it, and reports ok=false once no
// further ASM is found, so callers can drain the stream in a loop. Bytes
// only exist relative to a match: the bit stream itself is packed
// 8-bits-MSB-first starting at the ASM, never at a fixed stream
// offset, since the bit stream's leading phase is arbitrary.
type Decoder struct {
	bits  []byte
	pos   int
	codec *ccsdsrs.Codec
}

// NewDecoder returns a Decoder over an unpacked bit stream, starting
// at bit offset 0.
func NewDecoder(bits []byte) *Decoder {
	return &Decoder{bits: bits, codec: ccsdsrs.NewCodec()}
}

// Next returns the next frame and true, or ok=false once the stream
// is exhausted (no further ASM can be found).
func (d *Decoder) Next() (Frame, bool) {
	pos, found := FindASM(d.bits, d.pos)
	if !found {
		return Frame{}, false
	}

	if pos+CADUBits > len(d.bits) {
		d.pos = len(d.bits)
		return Frame{Offset: pos, OK: false, Err: ccsdserr.ErrFrameIncomplete}, true
	}

	// Byte packing: for each 8-bit block starting at the match,
	// assemble one byte MSB-first (spec.md §4.F).
	cadu := bitstream.Pack(d.bits[pos : pos+CADUBits])

	// The PN descrambler resets to its all-ones state at the start of
	// each CADU's coded region, immediately following the (never
	// scrambled) ASM — spec.md's "applied starting four bytes after
	// the ASM."
	coded := linecode.DescrambleBytes(cadu[ASMLen:])

	codewords := ccsdsrs.Deinterleave(coded, ccsdsrs.InterleaveDepth)
	total := 0
	uncorrectable := false
	for i, cw := range codewords {
		ccsdsrs.ToAlpha(cw)
		n, err := d.codec.Decode(cw)
		if err != nil {
			uncorrectable = true
		}
		ccsdsrs.ToDual(cw)
		total += n
		codewords[i] = cw
	}

	// Advance past this whole CADU even on failure: spec.md §4.F's
	// non-overlapping scan never re-examines bits already consumed by
	// a frame attempt.
	d.pos = pos + CADUBits

	if uncorrectable {
		return Frame{Offset: pos, OK: false, Corrections: total, Err: ccsdserr.ErrFrameUncorrectable}, true
	}

	corrected := ccsdsrs.Interleave(codewords, ccsdsrs.InterleaveDepth)
	return Frame{
		Offset:      pos,
		Data:        corrected[:DataLen],
		Corrections: total,
		OK:          true,
	}, true
}

// DecodeAll drains the Decoder and returns every frame it finds.
func DecodeAll(bits []byte) []Frame {
	d := NewDecoder(bits)
	var frames []Frame
	for {
		f, ok := d.Next()
		if !ok {
			break
		}
		frames = append(frames, f)
	}
	return frames
}
