package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOW_ORIGINS", "https://ludo.example.com")
	t.Setenv("FORCED_PASS_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://ludo.example.com", cfg.AllowOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.ForcedPassDelay)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("FORCED_PASS_DELAY", "soon")

	_, err := Load()
	assert.Error(t, err)
}
