package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/envlogd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "envlogd.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
interval_ms = 5000
heartbeat_ms = 150
log_path = "/mnt/sdcard/envlog.csv"
log_level = "debug"
heartbeat_pin = "GPIO17"
light_channel = 2
mock_sensors = true
telemetry = true
telemetry_db = "/var/lib/envlogd/cycles.db"
`)
	t.Setenv("ENVLOGD_CONFIG", configPath)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.IntervalMS, "Expected IntervalMS 5000")
	assert.Equal(t, 150, cfg.HeartbeatMS, "Expected HeartbeatMS 150")
	assert.Equal(t, "/mnt/sdcard/envlog.csv", cfg.LogPath, "Expected LogPath /mnt/sdcard/envlog.csv")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.Equal(t, "GPIO17", cfg.HeartbeatPin, "Expected HeartbeatPin GPIO17")
	assert.Equal(t, 2, cfg.LightChannel, "Expected LightChannel 2")
	assert.True(t, cfg.MockSensors, "Expected MockSensors true")
	assert.True(t, cfg.Telemetry, "Expected Telemetry true")
	assert.Equal(t, "/var/lib/envlogd/cycles.db", cfg.TelemetryDB, "Expected TelemetryDB /var/lib/envlogd/cycles.db")
}

func TestLoadDefaults(t *testing.T) {
	// Point at an empty config so no file on the host interferes
	configPath := writeConfig(t, "")
	t.Setenv("ENVLOGD_CONFIG", configPath)

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, 3000, cfg.IntervalMS, "Expected default IntervalMS 3000")
	assert.Equal(t, 100, cfg.HeartbeatMS, "Expected default HeartbeatMS 100")
	assert.Equal(t, "/mnt/storage/envlog.csv", cfg.LogPath, "Expected default LogPath")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel info")
	assert.False(t, cfg.MockSensors, "Expected default MockSensors false")
	assert.False(t, cfg.Telemetry, "Expected default Telemetry false")
	assert.Equal(t, uint16(0x76), cfg.BME280Addr, "Expected default BME280 address 0x76")
	assert.Equal(t, uint16(0x77), cfg.BMP280Addr, "Expected default BMP280 address 0x77")
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	configPath := writeConfig(t, `
This is not a valid TOML file
`)
	t.Setenv("ENVLOGD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestInvalidLogLevel(t *testing.T) {
	configPath := writeConfig(t, `
log_level = "invalid"
`)
	t.Setenv("ENVLOGD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid log level")
}

func TestInvalidInterval(t *testing.T) {
	configPath := writeConfig(t, `
interval_ms = 0
`)
	t.Setenv("ENVLOGD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval")
}

func TestHeartbeatWiderThanInterval(t *testing.T) {
	configPath := writeConfig(t, `
interval_ms = 100
heartbeat_ms = 100
`)
	t.Setenv("ENVLOGD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
}

func TestLogLevelFlag(t *testing.T) {
	configPath := writeConfig(t, "")
	t.Setenv("ENVLOGD_CONFIG", configPath)

	// Save original args and restore after test
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "--log-level", "debug"}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
}
