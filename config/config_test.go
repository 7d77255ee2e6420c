package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesOriginalConstants(t *testing.T) {
	c := Default()
	assert.Equal(t, 5, c.Decim)
	assert.InDelta(t, 18.75, c.SPS, 1e-6)
	assert.InDelta(t, 160e6, c.Rb, 1)
	assert.InDelta(t, 0.01, c.CostasAlpha, 1e-9)
	assert.InDelta(t, 0.0005, c.CostasBeta, 1e-9)
	assert.InDelta(t, 0.1, c.TimingAlpha, 1e-9)
	assert.InDelta(t, 0.005, c.TimingBeta, 1e-9)
	assert.True(t, c.RRCEnable)
	assert.InDelta(t, 0.8, c.RRCAlpha, 1e-9)
	assert.Equal(t, 12, c.RRCSpan)
	assert.Equal(t, 5000, c.EVMSkipSyms)
	assert.Equal(t, 600000, c.EVMLastSyms)
}

func TestEffectiveRRCSymbolRateDefaultsToHalfRb(t *testing.T) {
	c := Default()
	c.Rb = 100e6
	assert.InDelta(t, 50e6, c.EffectiveRRCSymbolRate(), 1)
}

func TestEffectiveRRCSymbolRateOverride(t *testing.T) {
	c := Default()
	c.Rb = 100e6
	c.RRCSymbolRate = 20e6
	assert.InDelta(t, 20e6, c.EffectiveRRCSymbolRate(), 1)
}

func TestValidateRejectsMissingInput(t *testing.T) {
	c := Default()
	err := c.Validate()
	assert.Error(t, err)
}

func TestParseFlagsOverridesDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"--input", "/tmp/x.iq", "--mode", "bpsk", "--decim", "3"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.iq", cfg.InputPath)
	assert.Equal(t, ModeBPSK, cfg.Mode)
	assert.Equal(t, 3, cfg.Decim)
}

func TestYAMLOverlayAppliesUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decim: 7\ncostas_alpha: 0.02\n"), 0o644))

	cfg, err := ParseFlags([]string{"--input", "/tmp/x.iq", "--config", path})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Decim)
	assert.InDelta(t, 0.02, cfg.CostasAlpha, 1e-9)
}
