package firgen

import "math"

// LowPass returns a Hamming-windowed sinc low-pass filter with the
// given normalized cutoff (0, 0.5] and tap count, used ahead of
// decimation to anti-alias the signal. ntaps is forced odd (a center
// tap is required for the sinc-at-zero special case). Grounded
// verbatim on hamming_window_fir() in original_source/cadu_solve.cpp:
// the window is standard Hamming (0.54/0.46), the filter is normalized
// to unity DC gain (sum(h) == 1), unlike RRC's energy normalization.
func LowPass(cutoffNorm float64, ntaps int) []float32 {
	if ntaps%2 == 0 {
		ntaps++
	}
	m := float64(ntaps - 1)
	taps := make([]float32, ntaps)

	var sum float64
	for n := 0; n < ntaps; n++ {
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(n)/m)
		x := float64(n) - m/2
		var sinc float64
		if math.Abs(x) < 1e-12 {
			sinc = 1.0
		} else {
			sinc = math.Sin(2*math.Pi*cutoffNorm*x) / (2 * math.Pi * cutoffNorm * x)
		}
		h := 2 * cutoffNorm * sinc * w
		taps[n] = float32(h)
		sum += h
	}

	if sum != 0 {
		norm := float32(1.0 / sum)
		for i := range taps {
			taps[i] *= norm
		}
	}
	return taps
}
