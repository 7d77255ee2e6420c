// Package firgen generates the FIR filter taps the preprocessing
// stage convolves the input signal with: a root-raised-cosine matched
// filter and a Hamming-windowed low-pass anti-alias filter. The
// teacher (filter/rrc.go) builds an RRC filter the same shape — a
// constructor that returns a []float32 tap slice plus a Process
// method — but normalizes its taps for unity symbol-spaced gain,
// which is the wrong normalization for a matched-filter receiver.
// This package instead follows
// original_source/cadu_solve.cpp's rrc_taps(), which normalizes taps
// so that sum(h^2) == 1 (energy normalization), and adds the Hamming
// low-pass generator cadu_solve.cpp uses ahead of decimation.
package firgen

import "math"

// RRC returns root-raised-cosine matched-filter taps for the given
// sample rate, symbol rate, roll-off factor and filter span (in
// symbol periods). It is grounded verbatim on rrc_taps() in
// original_source/cadu_solve.cpp, including its two singular-point
// special cases (t=0 and |t|=Ts/(4*alpha)).
func RRC(sampleRateHz, symbolRateHz, rollOff float64, spanSymbols int) []float32 {
	ts := 1.0 / symbolRateHz
	sps := sampleRateHz / symbolRateHz
	ntaps := int(math.Ceil(float64(spanSymbols) * sps))
	if ntaps%2 == 0 {
		ntaps++
	}

	taps := make([]float32, ntaps)
	half := ntaps / 2
	alpha := rollOff

	var sumSq float64
	for n := 0; n < ntaps; n++ {
		tn := float64(n-half) / sampleRateHz
		var h float64
		switch {
		case math.Abs(tn) < 1e-12:
			h = (1.0 + alpha*(4.0/math.Pi-1.0)) / math.Sqrt(ts)
		case alpha > 0 && math.Abs(math.Abs(tn)-ts/(4*alpha)) < 1e-12:
			h = (alpha / math.Sqrt(2*ts)) * ((1+2/math.Pi)*math.Sin(math.Pi/(4*alpha)) + (1-2/math.Pi)*math.Cos(math.Pi/(4*alpha)))
		default:
			x := tn / ts
			num := math.Sin(math.Pi*x*(1-alpha)) + 4*alpha*x*math.Cos(math.Pi*x*(1+alpha))
			den := math.Pi * x * (1 - math.Pow(4*alpha*x, 2))
			h = num / den / math.Sqrt(ts)
		}
		taps[n] = float32(h)
		sumSq += h * h
	}

	if sumSq > 0 {
		norm := float32(1.0 / math.Sqrt(sumSq))
		for i := range taps {
			taps[i] *= norm
		}
	}
	return taps
}
