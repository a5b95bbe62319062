package configuration_test

import (
	"testing"
	"time"

	"github.com/clambin/blinkq/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFromArgs_Defaults(t *testing.T) {
	cfg, err := configuration.GetConfigFromArgs([]string{})
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/sys/class/leds/led1", cfg.LedPath)
	assert.Empty(t, cfg.SerialDevice)
	assert.False(t, cfg.ActiveLow)
	assert.Equal(t, 8, cfg.Capacity)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Empty(t, cfg.Message)
}

func TestGetConfigFromArgs(t *testing.T) {
	cfg, err := configuration.GetConfigFromArgs([]string{
		"--debug",
		"--port", "8081",
		"--serial-device", "/dev/ttyUSB0",
		"--active-low",
		"--capacity", "4",
		"--interval", "100ms",
		"--message", "hello.",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "/dev/ttyUSB0", cfg.SerialDevice)
	assert.True(t, cfg.ActiveLow)
	assert.Equal(t, 4, cfg.Capacity)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
	assert.Equal(t, "hello.", cfg.Message)
}

func TestGetConfigFromArgs_Invalid(t *testing.T) {
	_, err := configuration.GetConfigFromArgs([]string{"--not-a-flag"})
	assert.Error(t, err)

	_, err = configuration.GetConfigFromArgs([]string{"--capacity", "0"})
	assert.Error(t, err)

	_, err = configuration.GetConfigFromArgs([]string{"--interval", "0s"})
	assert.Error(t, err)
}
