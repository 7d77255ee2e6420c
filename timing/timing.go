// Package timing implements Mueller & Müller symbol-timing recovery
// with linear interpolation, grounded on run_loops_bpsk()/run_loops()
// in original_source/cadu_solve.cpp: BPSK starts sampling at
// idx=sps_est, OQPSK starts at idx=0 with a half-symbol offset applied
// to the imaginary (Q) arm, sps is clamped to [0.5, 1.5] of nominal,
// and the per-iteration step is floored at 0.10 so the loop cannot
// stall or run backward.
package timing

import (
	"math"

	"ccsdsdemod/config"
	"ccsdsdemod/sample"
)

const minStep = 0.10

// Result holds the recovered symbol stream and the final sps
// estimate, used by the caller to judge whether the loop stayed
// within its operating range (spec.md §7 ErrLoopDiverged).
type Result struct {
	Symbols  []complex64
	FinalSPS float32
	Iters    int
	Watchdog bool // true if the iteration cap was hit before sig was exhausted
	Diverged bool // true if sps, idx, or the timing error went non-finite
}

// nonFinite32 reports whether x is NaN or +-Inf, per spec.md §4.C step
// 6's "if sps, idx, or e becomes non-finite, terminate the loop."
func nonFinite32(x float32) bool {
	f := float64(x)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Run recovers symbol timing from sig, a matched-filtered baseband
// signal, using the nominal samples-per-symbol spsNom and M&M loop
// gains alpha/beta.
func Run(sig []complex64, mode config.Mode, spsNom, alpha, beta float32) Result {
	spsMin := 0.5 * spsNom
	spsMax := 1.5 * spsNom
	sps := spsNom

	var idx float32
	if mode == config.ModeBPSK {
		idx = spsNom
	}

	watchdogLimit := int(float32(len(sig))/spsNom*4) + 1000

	var symbols []complex64
	var prevDec, prevSym complex64
	haveFirst := false
	iters := 0
	watchdogHit := false
	diverged := false

	// Bound per spec.md §4.C: "repeat while idx < N - sps - 5", not
	// just "idx < N-1" — the OQPSK Q arm samples at idx+sps/2 and both
	// arms still need a full interpolation window past idx.
	for idx < float32(len(sig))-sps-5 {
		iters++
		if iters > watchdogLimit {
			watchdogHit = true
			break
		}

		var sym complex64
		if mode == config.ModeOQPSK {
			re := real(sample.Interp(sig, idx))
			im := imag(sample.Interp(sig, idx+sps/2))
			sym = complex64(complex(re, im))
		} else {
			sym = sample.Interp(sig, idx)
		}

		dec := complex64(complex(sample.Sign(real(sym)), sample.Sign(imag(sym))))
		symbols = append(symbols, sym)

		if haveFirst {
			var errv float32
			if mode == config.ModeBPSK {
				errv = real(prevDec)*real(sym) - real(dec)*real(prevSym)
			} else {
				errv = real(prevDec)*real(sym) + imag(prevDec)*imag(sym) -
					(real(dec)*real(prevSym) + imag(dec)*imag(prevSym))
			}

			if nonFinite32(sps) || nonFinite32(idx) || nonFinite32(errv) {
				diverged = true
				break
			}

			sps += beta * errv
			if sps < spsMin {
				sps = spsMin
			} else if sps > spsMax {
				sps = spsMax
			}

			step := sps + alpha*errv
			if step < minStep {
				step = minStep
			}
			idx += step
		} else {
			idx += sps
			haveFirst = true
		}

		prevDec, prevSym = dec, sym
	}

	return Result{
		Symbols:  symbols,
		FinalSPS: sps,
		Iters:    iters,
		Watchdog: watchdogHit,
		Diverged: diverged,
	}
}
