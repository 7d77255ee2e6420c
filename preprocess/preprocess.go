// Package preprocess turns a raw IQ capture file into the normalized
// complex baseband the carrier and timing loops operate on: it loads
// interleaved I/Q samples, removes each channel's DC bias, scales to
// volts, optionally low-pass filters and decimates, optionally
// matched-filters with an RRC, and normalizes amplitude. Grounded on
// original_source/cadu_solve.cpp's load_and_process(), with every
// formula (voltage scaling, power computation, normalization epsilon)
// kept as in the original.
package preprocess

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"ccsdsdemod/ccsdserr"
	"ccsdsdemod/config"
	"ccsdsdemod/firgen"
)

// Result holds the preprocessed baseband plus the bookkeeping values
// the rest of the pipeline and the final energy report need.
type Result struct {
	Signal   []complex64
	SPSEff   float32 // samples per symbol after decimation
	FsEff    float64 // sample rate after decimation, Hz
	PrawW    float64 // raw (pre-filter) signal power, watts
	PpostW   float64 // post-filter, pre-normalization power, watts
}

// Run executes the full load-and-process pipeline against cfg.
func Run(cfg config.Config) (Result, error) {
	raw, err := readIQFile(cfg.InputPath, cfg.Format)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ccsdserr.ErrInputUnavailable, err)
	}
	if len(raw) == 0 {
		return Result{}, fmt.Errorf("%w: empty input", ccsdserr.ErrInputUnavailable)
	}

	removeDC(raw)

	vpk := cfg.FsVpp / 2
	var vPerCount float64
	switch cfg.Format {
	case config.FormatIQ16:
		vPerCount = float64(vpk) / 32768
	case config.FormatIQ32:
		vPerCount = float64(vpk) / 2147483648
	}
	sig := make([]complex64, len(raw))
	for i, z := range raw {
		sig[i] = complex64(complex(real(z)*vPerCount, imag(z)*vPerCount))
	}

	praw := meanPowerW(sig, float64(cfg.Rload))

	// The input sample rate is derived from sps_nominal * symbol rate
	// (cadu_solve.cpp treats SPS as samples-per-symbol at the capture
	// rate, so fs = sps * rb).
	fs := float64(cfg.SPS) * float64(cfg.Rb)

	if cfg.LowpassCutoffNorm > 0 || cfg.Decim > 1 {
		cutoff := float64(cfg.LowpassCutoffNorm)
		if cutoff <= 0 {
			// Anti-alias ahead of decimation: target the
			// post-decimation Nyquist with headroom, capped at 0.45.
			cutoff = 0.5 / float64(cfg.Decim)
		}
		if cutoff > 0.45 {
			cutoff = 0.45
		}
		taps := firgen.LowPass(cutoff, 65)
		sig = firgen.Convolve(sig, taps)
	}

	sig = decimate(sig, cfg.Decim)
	fsDec := fs / float64(cfg.Decim)
	spsEff := cfg.SPS / float32(cfg.Decim)

	if cfg.RRCEnable {
		rs := float64(cfg.EffectiveRRCSymbolRate())
		taps := firgen.RRC(fsDec, rs, float64(cfg.RRCAlpha), cfg.RRCSpan)
		sig = firgen.Convolve(sig, taps)
		if cfg.RRCTrimDelay {
			delay := len(taps) / 2
			if delay < len(sig) {
				sig = sig[delay:]
			}
		}
	}

	ppost := meanPowerW(sig, float64(cfg.Rload))

	normalize(sig)

	return Result{
		Signal: sig,
		SPSEff: spsEff,
		FsEff:  fsDec,
		PrawW:  praw,
		PpostW: ppost,
	}, nil
}

func readIQFile(path string, format config.SampleFormat) ([]complex64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []complex64
	switch format {
	case config.FormatIQ16:
		buf := make([]int16, 2)
		raw := make([]byte, 4)
		for {
			if _, err := io.ReadFull(f, raw); err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					break
				}
				return nil, err
			}
			buf[0] = int16(binary.LittleEndian.Uint16(raw[0:2]))
			buf[1] = int16(binary.LittleEndian.Uint16(raw[2:4]))
			samples = append(samples, complex64(complex(float32(buf[0]), float32(buf[1]))))
		}
	case config.FormatIQ32:
		raw := make([]byte, 8)
		for {
			if _, err := io.ReadFull(f, raw); err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					break
				}
				return nil, err
			}
			i := int32(binary.LittleEndian.Uint32(raw[0:4]))
			q := int32(binary.LittleEndian.Uint32(raw[4:8]))
			samples = append(samples, complex64(complex(float32(i), float32(q))))
		}
	default:
		return nil, fmt.Errorf("preprocess: unknown sample format %v", format)
	}
	return samples, nil
}

func removeDC(sig []complex64) {
	var sumI, sumQ float64
	for _, z := range sig {
		sumI += float64(real(z))
		sumQ += float64(imag(z))
	}
	n := float64(len(sig))
	meanI, meanQ := sumI/n, sumQ/n
	for i, z := range sig {
		sig[i] = complex64(complex(real(z)-float32(meanI), imag(z)-float32(meanQ)))
	}
}

func meanPowerW(sig []complex64, rload float64) float64 {
	if len(sig) == 0 || rload == 0 {
		return 0
	}
	var sum float64
	for _, z := range sig {
		re, im := float64(real(z)), float64(imag(z))
		sum += re*re + im*im
	}
	return sum / float64(len(sig)) / rload
}

func decimate(sig []complex64, decim int) []complex64 {
	if decim <= 1 {
		out := make([]complex64, len(sig))
		copy(out, sig)
		return out
	}
	out := make([]complex64, 0, len(sig)/decim+1)
	for i := 0; i < len(sig); i += decim {
		out = append(out, sig[i])
	}
	return out
}

func normalize(sig []complex64) {
	var maxMag float64
	for _, z := range sig {
		m := math.Hypot(float64(real(z)), float64(imag(z)))
		if m > maxMag {
			maxMag = m
		}
	}
	scale := float32(1.0 / (maxMag + 1e-12))
	for i, z := range sig {
		sig[i] = complex64(complex(real(z)*scale, imag(z)*scale))
	}
}
