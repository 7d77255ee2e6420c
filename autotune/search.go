// Package autotune grid-searches the Costas and Mueller & Müller loop
// gains for the combination that minimizes decision-directed EVM, an
// optional step ahead of frame decoding. Grounded on the
// #if ENABLE_AUTO_TUNE block in original_source/cadu_solve.cpp: the
// same four parameter grids, scored the same way (run the real
// demod loop, quiet, and measure EVM over an EVM-reporting window).
// Disabled by default (spec.md §6's ENABLE_AUTO_TUNE compile-time
// toggle becomes config.Config.Autotune, off unless requested).
package autotune

import (
	"sync"

	"ccsdsdemod/carrier"
	"ccsdsdemod/config"
	"ccsdsdemod/slicer"
	"ccsdsdemod/timing"
)

// Grids are the exact trial values original_source/cadu_solve.cpp's
// autotune block iterates, ported verbatim.
var (
	CostasAlphaGrid = []float32{0.01, 0.03, 0.05, 0.07, 0.1}
	CostasBetaGrid  = []float32{0.00005, 0.0001, 0.00015, 0.0002, 0.0003}
	TimingAlphaGrid = []float32{0.01, 0.03, 0.05, 0.07, 0.1}
	TimingBetaGrid  = []float32{0.001, 0.003, 0.005, 0.007, 0.01}
)

// Trial is one grid point and its resulting EVM.
type Trial struct {
	CostasAlpha, CostasBeta float32
	TimingAlpha, TimingBeta float32
	EVM                     float32
}

// Search runs every (costas_alpha, costas_beta, timing_alpha,
// timing_beta) combination in the grids above against sig, one
// goroutine per trial (spec.md §5's parallelization guidance; grounded
// on the teacher's only concurrency idiom, the producer goroutine in
// dvbs.StreamToIQ), and returns the trial with the lowest EVM.
func Search(sig []complex64, mode config.Mode, spsNom float32, skipSyms, lastSyms int) Trial {
	type job struct {
		ca, cb, ta, tb float32
	}
	var jobs []job
	for _, ca := range CostasAlphaGrid {
		for _, cb := range CostasBetaGrid {
			for _, ta := range TimingAlphaGrid {
				for _, tb := range TimingBetaGrid {
					jobs = append(jobs, job{ca, cb, ta, tb})
				}
			}
		}
	}

	results := make([]Trial, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = runTrial(sig, mode, spsNom, j.ca, j.cb, j.ta, j.tb, skipSyms, lastSyms)
		}(i, j)
	}
	wg.Wait()

	best := results[0]
	for _, r := range results[1:] {
		if r.EVM < best.EVM {
			best = r
		}
	}
	return best
}

func runTrial(sig []complex64, mode config.Mode, spsNom, ca, cb, ta, tb float32, skipSyms, lastSyms int) Trial {
	despun := carrier.Run(sig, mode, ca, cb)
	timed := timing.Run(despun, mode, spsNom, ta, tb)

	syms := timed.Symbols
	if skipSyms < len(syms) {
		syms = syms[skipSyms:]
	}
	if lastSyms > 0 && lastSyms < len(syms) {
		syms = syms[:lastSyms]
	}

	return Trial{
		CostasAlpha: ca, CostasBeta: cb,
		TimingAlpha: ta, TimingBeta: tb,
		EVM: slicer.EVM(syms, mode),
	}
}
