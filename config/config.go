// Package config holds the demodulator's run parameters: the sample
// format and decimation pipeline, the Costas and Mueller & Müller loop
// gains, the RRC matched filter parameters, and the reporting window
// used for decision-directed EVM/energy estimates. Grounded on
// original_source/cadu_solve.cpp's Config struct and
// config_init_defaults(); every default constant is ported verbatim.
package config

// Mode selects the carrier/timing loop variant.
type Mode int

const (
	// ModeOQPSK is offset QPSK: Costas uses the QPSK error detector,
	// M&M starts sampling at index 0 with a half-symbol Q offset.
	ModeOQPSK Mode = iota
	// ModeBPSK uses the BPSK Costas error detector and M&M starts
	// sampling at index sps_est (no half-symbol offset).
	ModeBPSK
)

// SampleFormat names the on-disk IQ sample encoding.
type SampleFormat int

const (
	FormatIQ16 SampleFormat = iota // interleaved int16 I/Q
	FormatIQ32                     // interleaved int32 I/Q
)

// Config mirrors original_source/cadu_solve.cpp's Config struct,
// generalized with the config.RRCSymbolRate field spec.md §9 asks for
// (independently configurable RRC internal sample rate, defaulting to
// Rb/2 to match the original's OQPSK-only assumption).
type Config struct {
	InputPath string
	Format    SampleFormat
	Mode      Mode

	Decim int
	SPS   float32 // nominal samples-per-symbol at the input rate
	Rb    float32 // bit/symbol rate, Hz

	CostasAlpha float32
	CostasBeta  float32
	TimingAlpha float32
	TimingBeta  float32

	RRCEnable     bool
	RRCAlpha      float32
	RRCSpan       int
	RRCTrimDelay  bool
	RRCSymbolRate float32 // Hz; 0 means "default to Rb/2"

	FsVpp float32 // full-scale peak-to-peak volts
	Rload float32 // load resistance, ohms

	EVMSkipSyms int
	EVMLastSyms int

	LowpassCutoffNorm float32

	Autotune bool

	OutputBitsPath string
	UDPAddr        string

	LogLevel string
}

// Default ports original_source/cadu_solve.cpp's config_init_defaults.
func Default() Config {
	return Config{
		Format: FormatIQ16,
		Mode:   ModeOQPSK,

		Decim: 5,
		SPS:   18.75,
		Rb:    160e6,

		CostasAlpha: 0.01,
		CostasBeta:  0.0005,
		TimingAlpha: 0.1,
		TimingBeta:  0.005,

		RRCEnable:    true,
		RRCAlpha:     0.8,
		RRCSpan:      12,
		RRCTrimDelay: false,

		FsVpp: 1.475,
		Rload: 50.0,

		EVMSkipSyms: 5000,
		EVMLastSyms: 600000,

		LowpassCutoffNorm: 0,

		OutputBitsPath: "output_bits.txt",

		LogLevel: "info",
	}
}

// EffectiveRRCSymbolRate resolves RRCSymbolRate to Rb/2 when unset,
// preserving original_source's OQPSK-only behavior as the default
// while letting BPSK callers override it (spec.md §9 Open Question).
func (c Config) EffectiveRRCSymbolRate() float32 {
	if c.RRCSymbolRate > 0 {
		return c.RRCSymbolRate
	}
	return c.Rb / 2
}

// Validate reports the first structural problem found in c, if any.
// Returned errors are of kind ccsdserr.ErrConfigInvalid at the call
// site (config itself stays decoupled from ccsdserr to avoid an
// import cycle with packages that both import config and ccsdserr).
func (c Config) Validate() error {
	switch {
	case c.InputPath == "":
		return errInvalid("input path is required")
	case c.Decim <= 0:
		return errInvalid("decim must be positive")
	case c.SPS <= 0:
		return errInvalid("sps must be positive")
	case c.Rb <= 0:
		return errInvalid("rb must be positive")
	case c.RRCEnable && (c.RRCAlpha <= 0 || c.RRCAlpha > 1):
		return errInvalid("rrc_alpha must be in (0, 1]")
	case c.RRCEnable && c.RRCSpan <= 0:
		return errInvalid("rrc_span must be positive")
	}
	return nil
}

type configError string

func (e configError) Error() string { return "config: " + string(e) }

func errInvalid(msg string) error { return configError(msg) }
