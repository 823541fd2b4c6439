package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "webstash.db", c.DatabaseDSN)
	assert.Equal(t, 5*time.Second, c.TipRotationInterval)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "webstash.db", cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Second, cfg.TipRotationInterval)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-d", "custom.db", "-i", "9"}

	cfg := LoadConfig()

	assert.Equal(t, "custom.db", cfg.DatabaseDSN)
	assert.Equal(t, 9*time.Second, cfg.TipRotationInterval)
}
