package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the subset of Config a YAML overlay file may set.
// It exists separately from Config so omitted fields don't clobber
// Default()'s values with YAML's zero values.
type fileConfig struct {
	Decim *int     `yaml:"decim"`
	SPS   *float32 `yaml:"sps"`
	Rb    *float32 `yaml:"rb"`

	CostasAlpha *float32 `yaml:"costas_alpha"`
	CostasBeta  *float32 `yaml:"costas_beta"`
	TimingAlpha *float32 `yaml:"timing_alpha"`
	TimingBeta  *float32 `yaml:"timing_beta"`

	RRCEnable     *bool    `yaml:"rrc_enable"`
	RRCAlpha      *float32 `yaml:"rrc_alpha"`
	RRCSpan       *int     `yaml:"rrc_span"`
	RRCTrimDelay  *bool    `yaml:"rrc_trim_delay"`
	RRCSymbolRate *float32 `yaml:"rrc_symbol_rate"`

	FsVpp *float32 `yaml:"fs_vpp"`
	Rload *float32 `yaml:"rload"`

	EVMSkipSyms *int `yaml:"evm_skip_syms"`
	EVMLastSyms *int `yaml:"evm_last_syms"`

	LogLevel *string `yaml:"log_level"`
}

// overlayFile loads path as YAML and applies any fields it sets onto
// cfg. This is an ambient-stack addition (no analog in
// original_source, which only ever reads CLI flags); it exists so
// long-running or scripted deployments can check in a config file
// instead of a long flag invocation, following
// doismellburning-samoyed's YAML-config convention.
func overlayFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return err
	}

	if fc.Decim != nil {
		cfg.Decim = *fc.Decim
	}
	if fc.SPS != nil {
		cfg.SPS = *fc.SPS
	}
	if fc.Rb != nil {
		cfg.Rb = *fc.Rb
	}
	if fc.CostasAlpha != nil {
		cfg.CostasAlpha = *fc.CostasAlpha
	}
	if fc.CostasBeta != nil {
		cfg.CostasBeta = *fc.CostasBeta
	}
	if fc.TimingAlpha != nil {
		cfg.TimingAlpha = *fc.TimingAlpha
	}
	if fc.TimingBeta != nil {
		cfg.TimingBeta = *fc.TimingBeta
	}
	if fc.RRCEnable != nil {
		cfg.RRCEnable = *fc.RRCEnable
	}
	if fc.RRCAlpha != nil {
		cfg.RRCAlpha = *fc.RRCAlpha
	}
	if fc.RRCSpan != nil {
		cfg.RRCSpan = *fc.RRCSpan
	}
	if fc.RRCTrimDelay != nil {
		cfg.RRCTrimDelay = *fc.RRCTrimDelay
	}
	if fc.RRCSymbolRate != nil {
		cfg.RRCSymbolRate = *fc.RRCSymbolRate
	}
	if fc.FsVpp != nil {
		cfg.FsVpp = *fc.FsVpp
	}
	if fc.Rload != nil {
		cfg.Rload = *fc.Rload
	}
	if fc.EVMSkipSyms != nil {
		cfg.EVMSkipSyms = *fc.EVMSkipSyms
	}
	if fc.EVMLastSyms != nil {
		cfg.EVMLastSyms = *fc.EVMLastSyms
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	return nil
}
