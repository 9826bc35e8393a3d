package domain

import (
	"errors"
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// Config defines the config for the exchange server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress             string `mapstructure:"server-address"`
	ServerTimeoutDurationSecs int    `mapstructure:"timeout-duration-secs"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	CORS *CORSConfig `mapstructure:"cors"`

	// Exchange encapsulates quoting and swap confirmation settings.
	Exchange *ExchangeConfig `mapstructure:"exchange"`

	// Tokens encapsulates the token registry config.
	Tokens *TokensConfig `mapstructure:"tokens"`

	Liquidity *LiquidityConfig `mapstructure:"liquidity"`

	Session *SessionConfig `mapstructure:"session"`

	Wallet *WalletConfig `mapstructure:"wallet"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// CORSConfig defines the CORS headers set on every response.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// ExchangeConfig defines the quoting parameters.
type ExchangeConfig struct {
	// FeeRate is the flat swap fee as a fraction, e.g. "0.003".
	FeeRate string `mapstructure:"fee-rate"`
	// DefaultSlippagePercent must be one of SlippagePresetsPercent.
	DefaultSlippagePercent string   `mapstructure:"default-slippage-percent"`
	SlippagePresetsPercent []string `mapstructure:"slippage-presets-percent"`
	DefaultDeadlineMinutes int      `mapstructure:"default-deadline-minutes"`
	// ConfirmationTimeoutSecs expires a pending swap confirmation. Zero disables the timeout.
	ConfirmationTimeoutSecs int `mapstructure:"confirmation-timeout-secs"`
}

// TokensConfig defines the token registry config.
type TokensConfig struct {
	// TokenListSource is an optional file path or http(s) URL of a JSON token list
	// replacing the default built-in tokens.
	TokenListSource string `mapstructure:"token-list-source"`
	// TokenListRefreshIntervalSecs re-fetches the token list periodically. Zero fetches once at startup.
	TokenListRefreshIntervalSecs int `mapstructure:"token-list-refresh-interval-secs"`
	// StrictAddressValidation additionally requires imported addresses to be valid hex.
	StrictAddressValidation bool `mapstructure:"strict-address-validation"`
	// DedupeByAddress rejects imports of an address that is already registered.
	DedupeByAddress bool `mapstructure:"dedupe-by-address"`
}

// LiquidityConfig defines the liquidity ledger config.
type LiquidityConfig struct {
	// MinimumFirstDeposit is enforced on the first deposit into an empty position
	// when greater than zero.
	MinimumFirstDeposit string `mapstructure:"minimum-first-deposit"`
}

// SessionConfig defines the session store config.
type SessionConfig struct {
	MaxSessions int `mapstructure:"max-sessions"`
}

// WalletProviderType identifies the wallet collaborator implementation.
type WalletProviderType string

const (
	SimulatedWalletProvider WalletProviderType = "simulated"
	EthereumWalletProvider  WalletProviderType = "ethereum"
)

// WalletConfig defines the wallet collaborator config.
type WalletConfig struct {
	Provider WalletProviderType `mapstructure:"provider"`
	// SimulationFallback connects a simulated wallet when the configured provider is absent.
	SimulationFallback bool `mapstructure:"simulation-fallback"`

	SimulatedAddress       string `mapstructure:"simulated-address"`
	SimulatedLiquiditySeed string `mapstructure:"simulated-liquidity-seed"`

	RPCEndpoint string `mapstructure:"rpc-endpoint"`
	Address     string `mapstructure:"address"`
	ChainID     uint64 `mapstructure:"chain-id"`
}

// OTELConfig defines the OpenTelemetry and Sentry config.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`
	CustomSampleRate   struct {
		Quote float64 `mapstructure:"quote"`
		Other float64 `mapstructure:"other"`
	} `mapstructure:"custom-sample-rate"`
}

var (
	ErrExchangeConfigMissing = errors.New("exchange config is required")
	ErrWalletConfigMissing   = errors.New("wallet config is required")
)

// Validate validates the config. Decimal fields are parsed so that
// consumers may use osmomath.MustNewDecFromStr after validation succeeds.
func (c Config) Validate() error {
	if c.Exchange == nil {
		return ErrExchangeConfigMissing
	}

	if c.Wallet == nil {
		return ErrWalletConfigMissing
	}

	if err := c.Exchange.Validate(); err != nil {
		return err
	}

	if c.Liquidity != nil && c.Liquidity.MinimumFirstDeposit != "" {
		minDeposit, err := osmomath.NewDecFromStr(c.Liquidity.MinimumFirstDeposit)
		if err != nil {
			return fmt.Errorf("invalid minimum-first-deposit: %w", err)
		}
		if minDeposit.IsNegative() {
			return fmt.Errorf("minimum-first-deposit must not be negative, was (%s)", c.Liquidity.MinimumFirstDeposit)
		}
	}

	if c.Tokens != nil && c.Tokens.TokenListRefreshIntervalSecs < 0 {
		return fmt.Errorf("token-list-refresh-interval-secs must not be negative, was (%d)", c.Tokens.TokenListRefreshIntervalSecs)
	}

	if c.Session != nil && c.Session.MaxSessions <= 0 {
		return fmt.Errorf("max-sessions must be positive, was (%d)", c.Session.MaxSessions)
	}

	switch c.Wallet.Provider {
	case SimulatedWalletProvider:
	case EthereumWalletProvider:
		if c.Wallet.Address != "" && !IsTokenAddressFormat(c.Wallet.Address) {
			return fmt.Errorf("invalid wallet address (%s)", c.Wallet.Address)
		}
	default:
		return fmt.Errorf("unknown wallet provider (%s)", c.Wallet.Provider)
	}

	if c.Wallet.SimulatedLiquiditySeed != "" {
		if _, err := osmomath.NewDecFromStr(c.Wallet.SimulatedLiquiditySeed); err != nil {
			return fmt.Errorf("invalid simulated-liquidity-seed: %w", err)
		}
	}

	return nil
}

// Validate validates the exchange config.
func (c ExchangeConfig) Validate() error {
	feeRate, err := osmomath.NewDecFromStr(c.FeeRate)
	if err != nil {
		return fmt.Errorf("invalid fee-rate: %w", err)
	}
	if feeRate.IsNegative() || feeRate.GTE(osmomath.OneDec()) {
		return fmt.Errorf("fee-rate must be in [0, 1), was (%s)", c.FeeRate)
	}

	if len(c.SlippagePresetsPercent) == 0 {
		return errors.New("slippage-presets-percent must be non-empty")
	}

	defaultFound := false
	for _, preset := range c.SlippagePresetsPercent {
		if _, err := ParseSlippagePercent(preset); err != nil {
			return err
		}
		if PercentEqual(preset, c.DefaultSlippagePercent) {
			defaultFound = true
		}
	}

	if !defaultFound {
		return fmt.Errorf("default-slippage-percent (%s) must be one of the presets", c.DefaultSlippagePercent)
	}

	if c.DefaultDeadlineMinutes < 0 {
		return fmt.Errorf("default-deadline-minutes must not be negative, was (%d)", c.DefaultDeadlineMinutes)
	}

	if c.ConfirmationTimeoutSecs < 0 {
		return fmt.Errorf("confirmation-timeout-secs must not be negative, was (%d)", c.ConfirmationTimeoutSecs)
	}

	return nil
}
