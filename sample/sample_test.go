package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsAndAbs2Agree(t *testing.T) {
	z := complex64(complex(3, 4))
	assert.InDelta(t, 5.0, Abs(z), 1e-6)
	assert.InDelta(t, 25.0, Abs2(z), 1e-6)
}

func TestConj(t *testing.T) {
	z := complex64(complex(1, 2))
	assert.Equal(t, complex64(complex(1, -2)), Conj(z))
}

func TestSignNeverZero(t *testing.T) {
	assert.Equal(t, float32(1), Sign(0))
	assert.Equal(t, float32(1), Sign(0.5))
	assert.Equal(t, float32(-1), Sign(-0.5))
}

func TestWrapPhaseRange(t *testing.T) {
	for _, theta := range []float32{0, math.Pi, -math.Pi, 4 * math.Pi, -4 * math.Pi, 3.5 * math.Pi} {
		w := WrapPhase(theta)
		assert.True(t, w > -math.Pi-1e-4 && w <= math.Pi+1e-4, "wrapped %v out of range: %v", theta, w)
	}
}

func TestRotateByZeroIsIdentity(t *testing.T) {
	z := complex64(complex(1, 2))
	r := Rotate(z, 0)
	assert.InDelta(t, float64(real(z)), float64(real(r)), 1e-5)
	assert.InDelta(t, float64(imag(z)), float64(imag(r)), 1e-5)
}

func TestInterpMidpoint(t *testing.T) {
	buf := []complex64{0, complex64(complex(2, 4))}
	got := Interp(buf, 0.5)
	assert.InDelta(t, 1.0, float64(real(got)), 1e-5)
	assert.InDelta(t, 2.0, float64(imag(got)), 1e-5)
}

func TestInterpOutOfRangeIsZero(t *testing.T) {
	buf := []complex64{1, 2, 3}
	assert.Equal(t, complex64(0), Interp(buf, -0.1))
	assert.Equal(t, complex64(0), Interp(buf, 2.0))
}

func TestInterpRealMidpoint(t *testing.T) {
	buf := []float32{0, 10}
	assert.InDelta(t, 5.0, InterpReal(buf, 0.5), 1e-5)
}
