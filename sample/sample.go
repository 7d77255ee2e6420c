// Package sample provides the complex-sample primitives the rest of
// the demodulator is built on: a complex64 IQ sample plus the handful
// of scalar operations (magnitude, squared magnitude, conjugate,
// rotation) the carrier and timing loops need. The teacher
// (SarahRoseLives-HackDVBS) already represents IQ samples as native
// Go complex64 values throughout filter/rrc.go and dvbs/dvbs.go rather
// than a custom struct; this package keeps that convention and adds
// the receive-side helpers a transmit-only chain never needed.
package sample

import "math"

// Abs returns the magnitude of z.
func Abs(z complex64) float32 {
	return float32(math.Hypot(float64(real(z)), float64(imag(z))))
}

// Abs2 returns the squared magnitude of z (cheaper than Abs when only
// relative magnitudes, or a sum of magnitudes, are needed).
func Abs2(z complex64) float32 {
	re, im := real(z), imag(z)
	return re*re + im*im
}

// Conj returns the complex conjugate of z.
func Conj(z complex64) complex64 {
	return complex(real(z), -imag(z))
}

// Rotate multiplies z by e^(-j*theta), the rotation the Costas loop
// applies to de-spin a sample by its estimated carrier phase.
func Rotate(z complex64, theta float32) complex64 {
	s, c := math.Sincos(float64(theta))
	cf, sf := float32(c), float32(-s)
	re, im := real(z), imag(z)
	return complex(re*cf-im*sf, re*sf+im*cf)
}

// Sign returns +1 if x >= 0 and -1 otherwise. This is the
// copysignf(1.0f, x)-style convention the Costas and M&M loops use
// throughout original_source/cadu_solve.cpp: sign(0) is +1, never 0.
func Sign(x float32) float32 {
	if x >= 0 {
		return 1
	}
	return -1
}

// WrapPhase reduces theta to (-pi, pi], matching the while-loop wrap
// cadu_solve.cpp's Costas loops use instead of math.Mod (which would
// give a different, also-valid but non-matching, residue range).
func WrapPhase(theta float32) float32 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}

// Interp linearly interpolates buf at fractional position pos. It
// mirrors cadu_solve.cpp's interpolate_sample/interpolate_sample_f:
// positions outside [0, len(buf)-1) return zero instead of panicking,
// since the timing loop routinely probes just past the end of buf.
func Interp(buf []complex64, pos float32) complex64 {
	if pos < 0 || pos >= float32(len(buf)-1) {
		return 0
	}
	i := int(pos)
	frac := pos - float32(i)
	a, b := buf[i], buf[i+1]
	return a + complex(frac, 0)*(b-a)
}

// InterpReal is the float32 counterpart of Interp, used when
// interpolating a real-valued (already-sliced) signal.
func InterpReal(buf []float32, pos float32) float32 {
	if pos < 0 || pos >= float32(len(buf)-1) {
		return 0
	}
	i := int(pos)
	frac := pos - float32(i)
	return buf[i] + frac*(buf[i+1]-buf[i])
}
