package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/validator"
)

// envPrefix prefixes environment overrides, e.g. TEMPO_EXCHANGE_FEE_RATE.
const envPrefix = "TEMPO"

// loadConfig loads the config in priority order:
// 1. DefaultConfig
// 2. the config file, if configPath is not empty
// 3. environment variables with the TEMPO_ prefix
// The loaded config is validated.
func loadConfig(configPath string) (domain.Config, error) {
	v := viper.New()

	setDefaults(v, DefaultConfig)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return domain.Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var config domain.Config
	if err := v.Unmarshal(&config); err != nil {
		return domain.Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.Validate(config); err != nil {
		return domain.Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// setDefaults registers every key so that environment variables can override
// keys missing from the config file.
func setDefaults(v *viper.Viper, defaults domain.Config) {
	v.SetDefault("server-address", defaults.ServerAddress)
	v.SetDefault("timeout-duration-secs", defaults.ServerTimeoutDurationSecs)

	v.SetDefault("logger-filename", defaults.LoggerFilename)
	v.SetDefault("logger-is-production", defaults.LoggerIsProduction)
	v.SetDefault("logger-level", defaults.LoggerLevel)

	v.SetDefault("cors.allowed-headers", defaults.CORS.AllowedHeaders)
	v.SetDefault("cors.allowed-methods", defaults.CORS.AllowedMethods)
	v.SetDefault("cors.allowed-origin", defaults.CORS.AllowedOrigin)

	v.SetDefault("exchange.fee-rate", defaults.Exchange.FeeRate)
	v.SetDefault("exchange.default-slippage-percent", defaults.Exchange.DefaultSlippagePercent)
	v.SetDefault("exchange.slippage-presets-percent", defaults.Exchange.SlippagePresetsPercent)
	v.SetDefault("exchange.default-deadline-minutes", defaults.Exchange.DefaultDeadlineMinutes)
	v.SetDefault("exchange.confirmation-timeout-secs", defaults.Exchange.ConfirmationTimeoutSecs)

	v.SetDefault("tokens.token-list-source", defaults.Tokens.TokenListSource)
	v.SetDefault("tokens.token-list-refresh-interval-secs", defaults.Tokens.TokenListRefreshIntervalSecs)
	v.SetDefault("tokens.strict-address-validation", defaults.Tokens.StrictAddressValidation)
	v.SetDefault("tokens.dedupe-by-address", defaults.Tokens.DedupeByAddress)

	v.SetDefault("liquidity.minimum-first-deposit", defaults.Liquidity.MinimumFirstDeposit)

	v.SetDefault("session.max-sessions", defaults.Session.MaxSessions)

	v.SetDefault("wallet.provider", string(defaults.Wallet.Provider))
	v.SetDefault("wallet.simulation-fallback", defaults.Wallet.SimulationFallback)
	v.SetDefault("wallet.simulated-address", defaults.Wallet.SimulatedAddress)
	v.SetDefault("wallet.simulated-liquidity-seed", defaults.Wallet.SimulatedLiquiditySeed)
	v.SetDefault("wallet.rpc-endpoint", defaults.Wallet.RPCEndpoint)
	v.SetDefault("wallet.address", defaults.Wallet.Address)
	v.SetDefault("wallet.chain-id", defaults.Wallet.ChainID)

	v.SetDefault("otel.dsn", defaults.OTEL.DSN)
	v.SetDefault("otel.sample-rate", defaults.OTEL.SampleRate)
	v.SetDefault("otel.enable-tracing", defaults.OTEL.EnableTracing)
	v.SetDefault("otel.profiles-sample-rate", defaults.OTEL.ProfilesSampleRate)
	v.SetDefault("otel.environment", defaults.OTEL.Environment)
	v.SetDefault("otel.custom-sample-rate.quote", defaults.OTEL.CustomSampleRate.Quote)
	v.SetDefault("otel.custom-sample-rate.other", defaults.OTEL.CustomSampleRate.Other)
}
