package main

import (
	"github.com/Apalugobang/tempo-dex/domain"
)

// DefaultConfig defines the default config for the exchange server.
var DefaultConfig = domain.Config{
	ServerAddress:             ":9092",
	ServerTimeoutDurationSecs: 2,

	LoggerFilename:     "tempo.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, Accept-Encoding, sentry-trace, baggage",
		AllowedMethods: "HEAD, GET, POST, PUT, DELETE, OPTIONS",
		AllowedOrigin:  "*",
	},

	Exchange: &domain.ExchangeConfig{
		FeeRate:                 "0.003",
		DefaultSlippagePercent:  "0.5",
		SlippagePresetsPercent:  []string{"0.1", "0.5", "1.0", "5.0"},
		DefaultDeadlineMinutes:  20,
		ConfirmationTimeoutSecs: 120,
	},

	Tokens: &domain.TokensConfig{
		// Empty keeps the built-in pathUSD, AlphaUSD and BetaUSD tokens.
		TokenListSource: "",
	},

	Liquidity: &domain.LiquidityConfig{
		// Advisory only.
		MinimumFirstDeposit: "0",
	},

	Session: &domain.SessionConfig{
		MaxSessions: 10_000,
	},

	Wallet: &domain.WalletConfig{
		Provider:           domain.SimulatedWalletProvider,
		SimulationFallback: true,
	},

	OTEL: &domain.OTELConfig{
		DSN:                "",
		SampleRate:         1.0,
		EnableTracing:      true,
		ProfilesSampleRate: 0.1,
		Environment:        "development",
	},
}
