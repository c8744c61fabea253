package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.MaxUploadBytes)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MOODMELT_PORT", "9999")
	t.Setenv("MOODMELT_MAX_UPLOAD_BYTES", "1024")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoad_InvalidUploadLimitFallsBack(t *testing.T) {
	t.Setenv("MOODMELT_MAX_UPLOAD_BYTES", "not-a-number")
	cfg := Load()
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.MaxUploadBytes)
}
