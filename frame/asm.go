// Package frame finds CCSDS attached sync markers in an unpacked bit
// stream and decodes the CADUs (ASM + interleaved RS(255,223) transfer
// frame) that follow them, grounded on spec.md §4.F and the main-loop
// frame search in original_source/cadu_solve.cpp.
package frame

import "ccsdsdemod/bitstream"

// ASM is the CCSDS attached sync marker, MSB-first 32 bits.
const ASM uint32 = 0x1ACFFC1D

// ASMLen is the sync marker's length in bytes, once packed.
const ASMLen = 4

// ASMBits is the sync marker's length in bits.
const ASMBits = ASMLen * 8

// asmBits is ASM unpacked to one 0/1 value per byte, MSB first — the
// exact pattern original_source/cadu_solve.cpp spells out as
// sync_pattern[32].
var asmBits = bitstream.Unpack([]byte{byte(ASM >> 24), byte(ASM >> 16), byte(ASM >> 8), byte(ASM)})

// FindASM scans an unpacked bit stream (one 0/1 value per byte) for
// the next occurrence of the ASM starting at or after offset, sliding
// one bit at a time — a real capture's leading bit phase is arbitrary,
// so the marker is byte-aligned only by chance. It returns the bit
// offset of the match and ok=true, or ok=false if no match is found.
// The scan never overlaps a previously consumed frame: callers advance
// offset by the full CADU bit length after a decode attempt (spec.md
// §4.F's non-overlapping resume behavior), matching
// cadu_solve.cpp's bit-indexed `offset = sync_found + FRAME_SIZE_BITS`.
func FindASM(bits []byte, offset int) (pos int, ok bool) {
	for i := offset; i+ASMBits <= len(bits); i++ {
		if matchASM(bits[i : i+ASMBits]) {
			return i, true
		}
	}
	return 0, false
}

func matchASM(bits []byte) bool {
	for i, want := range asmBits {
		if bits[i] != want {
			return false
		}
	}
	return true
}
