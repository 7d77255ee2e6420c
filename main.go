package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"ccsdsdemod/autotune"
	"ccsdsdemod/carrier"
	"ccsdsdemod/ccsdserr"
	"ccsdsdemod/config"
	"ccsdsdemod/frame"
	"ccsdsdemod/linecode"
	"ccsdsdemod/preprocess"
	"ccsdsdemod/slicer"
	"ccsdsdemod/timing"
	"ccsdsdemod/udpstream"
	"ccsdsdemod/utils"
)

func main() {
	cfg, err := config.ParseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal("parsing flags", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "err", fmt.Errorf("%w: %v", ccsdserr.ErrConfigInvalid, err))
	}

	// --- PHASE 1: SIGNAL RECOVERY ---
	// Load the capture, recover carrier and symbol timing, and slice
	// to a bit stream. Mirrors the teacher's pre-computation phase:
	// everything here runs once, up front, before any frame is
	// emitted.
	log.Info("loading capture", "path", cfg.InputPath, "mode", cfg.Mode)
	pre, err := preprocess.Run(cfg)
	if err != nil {
		log.Fatal("preprocessing failed", "err", err)
	}
	log.Info("preprocessed", "samples", len(pre.Signal), "sps_eff", pre.SPSEff, "fs_eff", pre.FsEff)

	costasAlpha, costasBeta := cfg.CostasAlpha, cfg.CostasBeta
	timingAlpha, timingBeta := cfg.TimingAlpha, cfg.TimingBeta
	if cfg.Autotune {
		log.Info("autotuning loop gains...")
		best := autotune.Search(pre.Signal, cfg.Mode, pre.SPSEff, cfg.EVMSkipSyms, cfg.EVMLastSyms)
		costasAlpha, costasBeta = best.CostasAlpha, best.CostasBeta
		timingAlpha, timingBeta = best.TimingAlpha, best.TimingBeta
		log.Info("autotune selected", "costas_alpha", costasAlpha, "costas_beta", costasBeta,
			"timing_alpha", timingAlpha, "timing_beta", timingBeta, "evm", best.EVM)
	}

	despun := carrier.Run(pre.Signal, cfg.Mode, costasAlpha, costasBeta)
	timed := timing.Run(despun, cfg.Mode, pre.SPSEff, timingAlpha, timingBeta)
	if timed.Watchdog {
		log.Warn("timing loop hit its iteration watchdog", "err", ccsdserr.ErrLoopDiverged)
	}

	reportSyms := timed.Symbols
	if cfg.EVMSkipSyms < len(reportSyms) {
		reportSyms = reportSyms[cfg.EVMSkipSyms:]
	}
	if cfg.EVMLastSyms > 0 && cfg.EVMLastSyms < len(reportSyms) {
		reportSyms = reportSyms[:cfg.EVMLastSyms]
	}
	evm := slicer.EVM(reportSyms, cfg.Mode)
	energy := slicer.Report(pre.PpostW, evm, cfg.Mode)
	log.Info("link quality", "evm", evm, "esn0_db", energy.EsN0DB, "ebn0_db", energy.EbN0DB)

	bits := sliceToBits(timed.Symbols, cfg.Mode)
	linecode.NewState().Decode(bits)

	// --- PHASE 2: FRAME DECODE & OUTPUT ---
	// ASM search, per-CADU PN descrambling and RS(255,223) correction
	// all happen inside frame.Decoder, which scans this same unpacked
	// bit stream directly — byte packing only happens internally,
	// relative to a confirmed ASM match, since the stream's leading bit
	// phase is arbitrary.
	log.Info("searching for CADUs...")
	dec := frame.NewDecoder(bits)

	var udpCh chan frame.Frame
	if cfg.UDPAddr != "" {
		udpCh = make(chan frame.Frame, 64)
		go func() {
			if err := udpstream.Stream(cfg.UDPAddr, udpCh); err != nil {
				log.Error("udp stream ended", "err", err)
			}
		}()
	}

	// output_bits.txt holds the unpacked post-line-code bit stream as
	// ASCII '0'/'1' characters, one per bit, exactly as
	// cadu_solve.cpp's fputc(processed_bits[i] ? '1' : '0', out) loop
	// writes it — not the decoded frame payloads.
	if cfg.OutputBitsPath != "" {
		out, ferr := os.Create(cfg.OutputBitsPath)
		if ferr != nil {
			log.Fatal("creating output file", "err", ferr)
		}
		ascii := make([]byte, len(bits))
		for i, b := range bits {
			if b != 0 {
				ascii[i] = '1'
			} else {
				ascii[i] = '0'
			}
		}
		if _, werr := out.Write(ascii); werr != nil {
			log.Error("writing output bits", "err", werr)
		}
		out.Close()
		log.Info("saved output bits", "path", cfg.OutputBitsPath, "bits", len(bits))
	}

	// A Ctrl+C stops the drain loop after the frame in flight, the same
	// shape as the teacher's TX loop: utils.WaitForSignal blocks until
	// SIGINT/SIGTERM, then the caller unwinds and reports what it has
	// so far instead of being killed mid-write.
	interrupted := make(chan struct{})
	go func() {
		utils.WaitForSignal()
		log.Warn("interrupt received, finishing in-flight frame and stopping")
		close(interrupted)
	}()

	good, bad, incomplete := 0, 0, 0
drain:
	for {
		select {
		case <-interrupted:
			break drain
		default:
		}
		f, ok := dec.Next()
		if !ok {
			break
		}
		switch {
		case f.OK:
			good++
			printFrameHex(f, good)
			if udpCh != nil {
				udpCh <- f
			}
		case f.Err == ccsdserr.ErrFrameIncomplete:
			incomplete++
		default:
			fmt.Printf(" - RS FAILED (errors=%d)\n", f.Corrections)
			bad++
		}
	}
	if udpCh != nil {
		close(udpCh)
	}

	total := good + bad + incomplete
	rate := 0.0
	if total > 0 {
		rate = 100.0 * float64(good) / float64(total)
	}
	fmt.Printf("\n--- FRAME PROCESSING SUMMARY ---\n")
	fmt.Printf("Frames found:  %d\n", total)
	fmt.Printf("TM OK:         %d\n", good)
	fmt.Printf("TM BAD:        %d\n", bad)
	fmt.Printf("Success rate:  %.1f%%\n", rate)

	log.Info("done", "frames_ok", good, "frames_bad", bad, "frames_incomplete", incomplete)
}

// printFrameHex dumps a decoded transfer frame's payload to stdout as
// hex, 32 bytes per line, matching cadu_solve.cpp's TM FRAME printout.
func printFrameHex(f frame.Frame, seq int) {
	fmt.Printf("================== TM FRAME %d ==================\n", seq)
	for i, b := range f.Data {
		fmt.Printf("%02X ", b)
		if (i+1)%32 == 0 {
			fmt.Println()
		}
	}
	if len(f.Data)%32 != 0 {
		fmt.Println()
	}
	fmt.Printf("================================================\n\n")
}

// sliceToBits hard-decides the recovered symbols back into an
// unpacked bit sequence, two bits per OQPSK symbol or one bit per
// BPSK symbol.
func sliceToBits(symbols []complex64, mode config.Mode) []byte {
	if mode == config.ModeBPSK {
		bits := make([]byte, len(symbols))
		for i, z := range symbols {
			if slicer.SliceBPSK(real(z)) > 0 {
				bits[i] = 1
			}
		}
		return bits
	}

	bits := make([]byte, len(symbols)*2)
	for i, z := range symbols {
		dec := slicer.SliceQPSK(z)
		if real(dec) > 0 {
			bits[i*2] = 1
		}
		if imag(dec) > 0 {
			bits[i*2+1] = 1
		}
	}
	return bits
}
