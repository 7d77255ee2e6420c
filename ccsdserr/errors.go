// Package ccsdserr defines the sentinel errors the demodulator's
// stages return, matching spec.md §7's five error kinds. Grounded on
// the teacher's plain errors.New style (main.go's
// errors.New("transfer cancelled")) rather than a wrapping/annotation
// framework the pack never reaches for.
package ccsdserr

import "errors"

var (
	// ErrInputUnavailable: the input file or stream could not be
	// opened or read. Fatal — the run cannot proceed.
	ErrInputUnavailable = errors.New("ccsds: input unavailable")

	// ErrLoopDiverged: the Costas or M&M loop's state left its valid
	// operating range (e.g. sps clamped repeatedly, watchdog tripped).
	// Non-fatal — the caller may keep whatever output was produced so
	// far.
	ErrLoopDiverged = errors.New("ccsds: carrier/timing loop diverged")

	// ErrFrameIncomplete: fewer than one full CADU's worth of bits
	// remained after an ASM was found. The frame is skipped, not
	// fatal.
	ErrFrameIncomplete = errors.New("ccsds: incomplete frame at end of stream")

	// ErrFrameUncorrectable: Reed-Solomon decoding failed on one or
	// more of a frame's interleaved codewords. The frame is marked
	// BAD, not fatal.
	ErrFrameUncorrectable = errors.New("ccsds: frame uncorrectable")

	// ErrConfigInvalid: a configuration value failed validation.
	// Fatal at startup, before any processing begins.
	ErrConfigInvalid = errors.New("ccsds: invalid configuration")
)
