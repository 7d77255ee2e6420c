package slicer

import (
	"math"

	"ccsdsdemod/config"
)

// EnergyReport summarizes the link quality of a decoded symbol
// stream: signal power (the whole post-filter power), a noise power
// derived from decision-directed EVM, Es/N0 and Eb/N0, and their
// watt/dB/dBm figures. Grounded on the
// energy/noise reporting section of original_source/cadu_solve.cpp's
// main(), which derives noise power from EVM rather than measuring it
// directly (there is no noise-only reference signal available to a
// receive-only demodulator).
type EnergyReport struct {
	PsigW float64 // post-filter signal power, watts
	PnW   float64 // noise power implied by EVM, watts

	SNRInband float64 // Psig/Pn, linear
	EsN0      float64 // linear
	EbN0      float64 // linear, divided by bits/symbol

	SNRInbandDB float64
	EsN0DB      float64
	EbN0DB      float64

	PsigDBm float64
	PnDBm   float64
}

// Report builds an EnergyReport from the post-filter signal power
// ppostW (as computed by preprocess.Result.PpostW), the
// decision-directed EVM evm, and the modulation's bits-per-symbol.
func Report(ppostW float64, evm float32, mode config.Mode) EnergyReport {
	bitsPerSym := 2.0
	if mode == config.ModeBPSK {
		bitsPerSym = 1.0
	}

	evm2 := float64(evm) * float64(evm)
	pn := ppostW * evm2

	snr := ppostW / (pn + 1e-30)
	esN0 := snr // symbol-rate-normalized noise bandwidth assumption
	ebN0 := esN0 / bitsPerSym

	return EnergyReport{
		PsigW: ppostW,
		PnW:   pn,

		SNRInband: snr,
		EsN0:      esN0,
		EbN0:      ebN0,

		SNRInbandDB: toDB(snr),
		EsN0DB:      toDB(esN0),
		EbN0DB:      toDB(ebN0),

		PsigDBm: toDBm(ppostW),
		PnDBm:   toDBm(pn),
	}
}

func toDB(linear float64) float64 {
	if linear <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(linear)
}

func toDBm(watts float64) float64 {
	if watts <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(watts*1000)
}
