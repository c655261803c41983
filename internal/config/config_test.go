package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.NotEmpty(t, cfg.APIURL)
	assert.Equal(t, 60, cfg.RequestTimeout)
	assert.Equal(t, 100.0, cfg.PixelToNM)
	assert.Equal(t, 15.0, cfg.RiskThreshold)
	assert.NotEmpty(t, cfg.ExampleDirectory)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_URL", "http://localhost:5000/detect")
	t.Setenv("PIXEL_TO_NM", "250.5")
	t.Setenv("RISK_THRESHOLD", "20")

	cfg := Load()

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "http://localhost:5000/detect", cfg.APIURL)
	assert.Equal(t, 250.5, cfg.PixelToNM)
	assert.Equal(t, 20.0, cfg.RiskThreshold)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("PIXEL_TO_NM", "abc")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 100.0, cfg.PixelToNM)
}
