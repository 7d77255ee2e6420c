package timing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccsdsdemod/config"
)

func synthBPSK(sps float32, nsyms int) []complex64 {
	n := int(float32(nsyms) * sps)
	sig := make([]complex64, n)
	for i := 0; i < n; i++ {
		symIdx := int(float32(i) / sps)
		bit := float32(1)
		if symIdx%2 == 0 {
			bit = -1
		}
		sig[i] = complex64(complex(bit, 0))
	}
	return sig
}

func TestTimingBPSKRecoversApproximatelyNSymbols(t *testing.T) {
	const sps = 8.0
	const nsyms = 500
	sig := synthBPSK(sps, nsyms)

	res := Run(sig, config.ModeBPSK, sps, 0.1, 0.005)
	require.False(t, res.Watchdog)
	assert.InDelta(t, nsyms, len(res.Symbols), float64(nsyms)*0.05)
}

func TestTimingSPSStaysWithinClampBounds(t *testing.T) {
	const sps = 10.0
	sig := synthBPSK(sps, 300)
	res := Run(sig, config.ModeBPSK, sps, 0.1, 0.005)
	assert.GreaterOrEqual(t, res.FinalSPS, float32(0.5*sps))
	assert.LessOrEqual(t, res.FinalSPS, float32(1.5*sps))
}

func TestTimingOQPSKStartsAtIndexZero(t *testing.T) {
	sig := synthBPSK(8, 200)
	res := Run(sig, config.ModeOQPSK, 8, 0.1, 0.005)
	require.NotEmpty(t, res.Symbols)
	assert.Equal(t, real(sig[0]), real(res.Symbols[0]))
	assert.False(t, res.Diverged)
}

// spec.md §4.C step 6: a non-finite sps, idx, or timing error must
// terminate the loop rather than run away or poison the rest of the
// symbol buffer with NaNs.
func TestTimingTerminatesOnNonFiniteSignal(t *testing.T) {
	sig := make([]complex64, 400)
	for i := range sig {
		sig[i] = complex64(complex(float32(math.NaN()), float32(math.NaN())))
	}

	res := Run(sig, config.ModeBPSK, 8, 0.1, 0.005)
	assert.True(t, res.Diverged)
	assert.False(t, res.Watchdog)
}
