package preprocess

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccsdsdemod/ccsdserr"
	"ccsdsdemod/config"
)

func writeIQ16(t *testing.T, path string, samples [][2]int16) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	buf := make([]byte, 4)
	for _, s := range samples {
		binary.LittleEndian.PutUint16(buf[0:2], uint16(s[0]))
		binary.LittleEndian.PutUint16(buf[2:4], uint16(s[1]))
		_, err := f.Write(buf)
		require.NoError(t, err)
	}
}

func TestRunNormalizesAmplitudeToUnity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iq.bin")

	samples := make([][2]int16, 4000)
	for i := range samples {
		samples[i] = [2]int16{int16(1000 + i%7), int16(-500 + i%5)}
	}
	writeIQ16(t, path, samples)

	cfg := config.Default()
	cfg.InputPath = path
	cfg.Decim = 1
	cfg.RRCEnable = false

	res, err := Run(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.Signal)

	var maxMag float64
	for _, z := range res.Signal {
		m := float64(real(z))*float64(real(z)) + float64(imag(z))*float64(imag(z))
		if m > maxMag {
			maxMag = m
		}
	}
	assert.InDelta(t, 1.0, maxMag, 1e-3)
}

func TestRunMissingFileReturnsInputUnavailable(t *testing.T) {
	cfg := config.Default()
	cfg.InputPath = "/nonexistent/path/to/file.iq"
	_, err := Run(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ccsdserr.ErrInputUnavailable)
}

func TestRunDecimatesByConfiguredFactor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iq.bin")
	samples := make([][2]int16, 1000)
	for i := range samples {
		samples[i] = [2]int16{int16(i % 100), int16(-(i % 50))}
	}
	writeIQ16(t, path, samples)

	cfg := config.Default()
	cfg.InputPath = path
	cfg.Decim = 4
	cfg.RRCEnable = false

	res, err := Run(cfg)
	require.NoError(t, err)
	assert.InDelta(t, float64(len(samples))/4, float64(len(res.Signal)), 2)
}
