package config

import (
	"github.com/spf13/pflag"
)

// ParseFlags registers spec.md §6's CLI surface against fs and returns
// a Config built from Default() overridden by whatever flags the user
// set. Using spf13/pflag (rather than stdlib flag) is required here
// because spec.md's flag table is
// GNU-style long options (--rrc-alpha, --evm-skip-syms, ...); donor:
// doismellburning-samoyed's go.mod already depends on pflag for the
// same reason.
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("ccsdsdemod", pflag.ContinueOnError)
	cfg := Default()

	var mode, format string
	fs.StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "path to the raw IQ capture file")
	fs.StringVar(&format, "format", "iq16", "sample format: iq16 or iq32")
	fs.StringVar(&mode, "mode", "oqpsk", "modulation: oqpsk or bpsk")

	fs.IntVarP(&cfg.Decim, "decim", "d", cfg.Decim, "decimation factor")
	fs.Float32Var(&cfg.SPS, "sps", cfg.SPS, "nominal samples per symbol")
	fs.Float32Var(&cfg.Rb, "rb", cfg.Rb, "symbol rate, Hz")

	fs.Float32Var(&cfg.CostasAlpha, "costas-alpha", cfg.CostasAlpha, "Costas loop proportional gain")
	fs.Float32Var(&cfg.CostasBeta, "costas-beta", cfg.CostasBeta, "Costas loop integral gain")
	fs.Float32Var(&cfg.TimingAlpha, "timing-alpha", cfg.TimingAlpha, "M&M loop proportional gain")
	fs.Float32Var(&cfg.TimingBeta, "timing-beta", cfg.TimingBeta, "M&M loop integral gain")

	fs.BoolVar(&cfg.RRCEnable, "rrc-enable", cfg.RRCEnable, "enable the RRC matched filter")
	fs.Float32Var(&cfg.RRCAlpha, "rrc-alpha", cfg.RRCAlpha, "RRC roll-off factor")
	fs.IntVar(&cfg.RRCSpan, "rrc-span", cfg.RRCSpan, "RRC filter span, in symbols")
	fs.BoolVar(&cfg.RRCTrimDelay, "rrc-trim-delay", cfg.RRCTrimDelay, "trim the RRC filter's group delay from the output")
	fs.Float32Var(&cfg.RRCSymbolRate, "rrc-symbol-rate", cfg.RRCSymbolRate, "RRC internal symbol rate, Hz (0 = rb/2)")

	fs.Float32Var(&cfg.FsVpp, "fs-vpp", cfg.FsVpp, "full-scale peak-to-peak voltage")
	fs.Float32Var(&cfg.Rload, "rload", cfg.Rload, "load resistance, ohms")

	fs.IntVar(&cfg.EVMSkipSyms, "evm-skip-syms", cfg.EVMSkipSyms, "symbols to skip before EVM measurement")
	fs.IntVar(&cfg.EVMLastSyms, "evm-last-syms", cfg.EVMLastSyms, "symbols to measure EVM over")

	fs.BoolVar(&cfg.Autotune, "autotune", cfg.Autotune, "grid-search loop gains for minimum EVM before decoding")
	fs.StringVar(&cfg.OutputBitsPath, "output-bits", cfg.OutputBitsPath, "path to write decoded bits to")
	fs.StringVar(&cfg.UDPAddr, "udp", cfg.UDPAddr, "stream decoded frames to this UDP address (host:port)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	var configPath string
	fs.StringVar(&configPath, "config", "", "optional YAML config file; flags override its values")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath != "" {
		if err := overlayFile(&cfg, configPath); err != nil {
			return Config{}, err
		}
		// Re-parse so explicit flags still win over the file.
		if err := fs.Parse(args); err != nil {
			return Config{}, err
		}
	}

	switch format {
	case "iq16":
		cfg.Format = FormatIQ16
	case "iq32":
		cfg.Format = FormatIQ32
	}
	switch mode {
	case "bpsk":
		cfg.Mode = ModeBPSK
	default:
		cfg.Mode = ModeOQPSK
	}

	return cfg, nil
}
