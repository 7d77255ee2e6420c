package carrier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ccsdsdemod/config"
)

// A BPSK signal rotated by a fixed phase offset should converge: the
// de-spun output's imaginary part should shrink toward zero over the
// run (property 1 in spec.md §8 is the PLL phase-lock property).
func TestCostasBPSKLocksToFixedPhaseOffset(t *testing.T) {
	const n = 4000
	offset := float32(0.6)
	sig := make([]complex64, n)
	for i := 0; i < n; i++ {
		bit := float32(1)
		if i%2 == 0 {
			bit = -1
		}
		re := bit * float32(math.Cos(float64(offset)))
		im := bit * float32(math.Sin(float64(offset)))
		sig[i] = complex64(complex(re, im))
	}

	out := Run(sig, config.ModeBPSK, 0.05, 0.002)

	var earlyIm, lateIm float64
	for i := 100; i < 300; i++ {
		earlyIm += math.Abs(float64(imag(out[i])))
	}
	for i := n - 300; i < n-100; i++ {
		lateIm += math.Abs(float64(imag(out[i])))
	}
	assert.Less(t, lateIm, earlyIm)
}

func TestCostasStepDoesNotDivergeOnCleanSignal(t *testing.T) {
	st := NewState(config.ModeOQPSK, 0.01, 0.0005)
	for i := 0; i < 2000; i++ {
		st.Step(complex64(complex(0.7, 0.7)))
	}
	assert.False(t, st.Diverged())
}
