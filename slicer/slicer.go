// Package slicer makes hard symbol decisions and computes
// decision-directed EVM, grounded on slicer_bpsk/slicer_qpsk and
// evm_decision_directed_bpsk/_qpsk in
// original_source/cadu_solve.cpp.
package slicer

import (
	"math"

	"ccsdsdemod/config"
	"ccsdsdemod/sample"
)

// SliceQPSK returns the nearest ±1±1j constellation point to z.
func SliceQPSK(z complex64) complex64 {
	return complex64(complex(sample.Sign(real(z)), sample.Sign(imag(z))))
}

// SliceBPSK returns ±1, the nearest BPSK constellation point to val.
func SliceBPSK(val float32) float32 {
	return sample.Sign(val)
}

// EVM computes decision-directed error-vector magnitude over syms,
// skipping the decision-directed gain's estimation error by jointly
// solving for the best complex (QPSK) or real (BPSK) gain a that
// minimizes sum|sym - a*slice(sym)|^2, then reporting the normalized
// residual. Grounded verbatim on evm_decision_directed_qpsk/_bpsk.
func EVM(syms []complex64, mode config.Mode) float32 {
	if len(syms) == 0 {
		return 0
	}

	if mode == config.ModeBPSK {
		var num, den float64
		for _, z := range syms {
			ref := SliceBPSK(real(z))
			num += float64(ref) * float64(real(z))
			den += float64(ref) * float64(ref)
		}
		a := num / (den + 1e-30)

		var errSum, refSum float64
		for _, z := range syms {
			ref := SliceBPSK(real(z))
			scaled := a * float64(ref)
			diff := float64(real(z)) - scaled
			errSum += diff * diff
			refSum += scaled * scaled
		}
		return float32(math.Sqrt(errSum / (refSum + 1e-30)))
	}

	var numRe, numIm, den float64
	for _, z := range syms {
		ref := SliceQPSK(z)
		numRe += float64(real(ref))*float64(real(z)) + float64(imag(ref))*float64(imag(z))
		numIm += float64(real(ref))*float64(imag(z)) - float64(imag(ref))*float64(real(z))
		den += float64(real(ref))*float64(real(ref)) + float64(imag(ref))*float64(imag(ref))
	}
	den += 1e-30
	aRe, aIm := numRe/den, numIm/den

	var errSum, refSum float64
	for _, z := range syms {
		ref := SliceQPSK(z)
		scaledRe := aRe*float64(real(ref)) - aIm*float64(imag(ref))
		scaledIm := aRe*float64(imag(ref)) + aIm*float64(real(ref))
		diffRe := float64(real(z)) - scaledRe
		diffIm := float64(imag(z)) - scaledIm
		errSum += diffRe*diffRe + diffIm*diffIm
		refSum += scaledRe*scaledRe + scaledIm*scaledIm
	}
	return float32(math.Sqrt(errSum / (refSum + 1e-30)))
}
