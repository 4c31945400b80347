// FilePath: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "underwater_navigation", cfg.MongoDB.Database)
	assert.Equal(t, 10*time.Second, cfg.MongoDB.ConnectTimeout)
	assert.Equal(t, 5*time.Second, cfg.MongoDB.OperationTimeout)

	assert.Equal(t, "info", cfg.Monitoring.LogLevel)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("UWNAV_SERVER__PORT", "9100")
	t.Setenv("UWNAV_MONGODB__URI", "mongodb://mongo.internal:27017")
	t.Setenv("UWNAV_MONGODB__DATABASE", "uwnav_staging")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "mongodb://mongo.internal:27017", cfg.MongoDB.URI)
	assert.Equal(t, "uwnav_staging", cfg.MongoDB.Database)
}

func TestLoadRejectsBadPort(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("UWNAV_SERVER__PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
