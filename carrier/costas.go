// Package carrier implements the Costas loop carrier-recovery PLL for
// BPSK and OQPSK/QPSK, grounded on run_loops_bpsk()/run_loops() in
// original_source/cadu_solve.cpp: the same error detectors, the same
// alpha/beta update law, and the same (-pi, pi] phase wrap.
package carrier

import (
	"ccsdsdemod/config"
	"ccsdsdemod/sample"
)

// State holds a Costas loop's running phase/frequency estimate. Not
// safe for concurrent use; one State per signal being tracked.
type State struct {
	Mode  config.Mode
	Alpha float32
	Beta  float32

	Phase float32
	Freq  float32
}

// NewState builds a Costas loop state with zero initial phase/freq.
func NewState(mode config.Mode, alpha, beta float32) *State {
	return &State{Mode: mode, Alpha: alpha, Beta: beta}
}

// Step de-spins z by the loop's current phase estimate, computes the
// phase-detector error for the configured mode, and updates Phase and
// Freq. It returns the de-spun sample.
func (s *State) Step(z complex64) complex64 {
	out := sample.Rotate(z, s.Phase)

	var err float32
	switch s.Mode {
	case config.ModeBPSK:
		err = sample.Sign(real(out)) * imag(out)
	default: // ModeOQPSK / QPSK
		err = sample.Sign(real(out))*imag(out) - sample.Sign(imag(out))*real(out)
	}

	s.Freq += s.Beta * err
	s.Phase += s.Freq + s.Alpha*err
	s.Phase = sample.WrapPhase(s.Phase)

	return out
}

// Diverged reports whether the loop's frequency estimate has left a
// plausible operating range, i.e. more than half a cycle (pi radians)
// per sample
// — a proxy for ErrLoopDiverged at the call site (spec.md §7).
func (s *State) Diverged() bool {
	const limit = 3.14159265 // radians/sample; beyond this the loop has lost lock
	return s.Freq > limit || s.Freq < -limit
}

// Run applies Step across sig in place conceptually, returning the
// de-spun output signal, grounded on the per-sample loop body shared
// by run_loops_bpsk and run_loops.
func Run(sig []complex64, mode config.Mode, alpha, beta float32) []complex64 {
	st := NewState(mode, alpha, beta)
	out := make([]complex64, len(sig))
	for i, z := range sig {
		out[i] = st.Step(z)
	}
	return out
}
