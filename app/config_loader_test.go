package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apalugobang/tempo-dex/domain"
)

const testConfigJSON = `{
  "server-address": ":9099",
  "exchange": {
    "fee-rate": "0.003",
    "default-slippage-percent": "1.0",
    "slippage-presets-percent": ["0.5", "1.0"],
    "default-deadline-minutes": 30
  },
  "wallet": {
    "provider": "simulated",
    "simulated-liquidity-seed": "100"
  }
}`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := loadConfig("")
	require.NoError(t, err)

	require.Equal(t, DefaultConfig.ServerAddress, config.ServerAddress)
	require.Equal(t, "0.003", config.Exchange.FeeRate)
	require.Equal(t, []string{"0.1", "0.5", "1.0", "5.0"}, config.Exchange.SlippagePresetsPercent)
	require.Equal(t, domain.SimulatedWalletProvider, config.Wallet.Provider)
	require.True(t, config.Wallet.SimulationFallback)
	require.Equal(t, 10_000, config.Session.MaxSessions)
}

func TestLoadConfig_File(t *testing.T) {
	config, err := loadConfig(writeConfig(t, testConfigJSON))
	require.NoError(t, err)

	require.Equal(t, ":9099", config.ServerAddress)
	require.Equal(t, "1.0", config.Exchange.DefaultSlippagePercent)
	require.Equal(t, []string{"0.5", "1.0"}, config.Exchange.SlippagePresetsPercent)
	require.Equal(t, 30, config.Exchange.DefaultDeadlineMinutes)
	require.Equal(t, "100", config.Wallet.SimulatedLiquiditySeed)

	// Keys missing from the file keep their defaults.
	require.Equal(t, DefaultConfig.Exchange.ConfirmationTimeoutSecs, config.Exchange.ConfirmationTimeoutSecs)
	require.Equal(t, DefaultConfig.LoggerLevel, config.LoggerLevel)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("TEMPO_EXCHANGE_FEE_RATE", "0.01")
	t.Setenv("TEMPO_SESSION_MAX_SESSIONS", "5")

	config, err := loadConfig(writeConfig(t, testConfigJSON))
	require.NoError(t, err)

	require.Equal(t, "0.01", config.Exchange.FeeRate)
	require.Equal(t, 5, config.Session.MaxSessions)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "malformed file",
			contents: `{"exchange": `,
		},
		{
			name:     "fee rate out of range",
			contents: `{"exchange": {"fee-rate": "1.5"}}`,
		},
		{
			name:     "default slippage not a preset",
			contents: `{"exchange": {"default-slippage-percent": "2"}}`,
		},
		{
			name:     "unknown wallet provider",
			contents: `{"wallet": {"provider": "ledger"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.contents))
			require.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
