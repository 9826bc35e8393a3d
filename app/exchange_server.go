package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/log"
	"github.com/Apalugobang/tempo-dex/middleware"
	quotehttpdelivery "github.com/Apalugobang/tempo-dex/quote/delivery/http"
	quoteusecase "github.com/Apalugobang/tempo-dex/quote/usecase"
	sessionhttpdelivery "github.com/Apalugobang/tempo-dex/session/delivery/http"
	sessionusecase "github.com/Apalugobang/tempo-dex/session/usecase"
	systemhttpdelivery "github.com/Apalugobang/tempo-dex/system/delivery/http"
	tokenshttpdelivery "github.com/Apalugobang/tempo-dex/tokens/delivery/http"
	tokensusecase "github.com/Apalugobang/tempo-dex/tokens/usecase"
	"github.com/Apalugobang/tempo-dex/wallet/ethereum"
	"github.com/Apalugobang/tempo-dex/wallet/simulated"
)

const tracerName = "tempo-dex"

// ExchangeServer defines an interface for the exchange server.
// It wires the token registry, quoting and session usecases and
// exposes them over HTTP.
type ExchangeServer interface {
	GetTokensUseCase() mvc.TokensUsecase
	GetSessionUseCase() mvc.SessionUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type exchangeServer struct {
	tokensUseCase  mvc.TokensUsecase
	sessionUseCase mvc.SessionUsecase

	tokenListLoader          tokensusecase.TokenListLoader
	tokenListRefreshInterval time.Duration

	e             *echo.Echo
	serverAddress string
	logger        log.Logger
}

// GetTokensUseCase implements ExchangeServer.
func (s *exchangeServer) GetTokensUseCase() mvc.TokensUsecase {
	return s.tokensUseCase
}

// GetSessionUseCase implements ExchangeServer.
func (s *exchangeServer) GetSessionUseCase() mvc.SessionUsecase {
	return s.sessionUseCase
}

// GetLogger implements ExchangeServer.
func (s *exchangeServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements ExchangeServer.
// Sessions are stopped after the HTTP server drained.
func (s *exchangeServer) Shutdown(ctx context.Context) error {
	err := s.e.Shutdown(ctx)
	s.sessionUseCase.Shutdown()
	return err
}

// Start implements ExchangeServer.
func (s *exchangeServer) Start(ctx context.Context) error {
	if s.tokenListLoader != nil && s.tokenListRefreshInterval > 0 {
		go s.refreshTokenList(ctx)
	}

	s.logger.Info("Starting exchange server", zap.String("address", s.serverAddress))
	err := s.e.Start(s.serverAddress)
	if err != nil {
		return err
	}

	return nil
}

func (s *exchangeServer) refreshTokenList(ctx context.Context) {
	ticker := time.NewTicker(s.tokenListRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.tokenListLoader.FetchAndUpdateTokens(s.loadTokens); err != nil {
				s.logger.Error("failed to refresh token list", zap.Error(err))
			}
		}
	}
}

func (s *exchangeServer) loadTokens(entries []domain.TokenEntry) {
	s.tokensUseCase.LoadTokens(entries)
	s.logger.Info("loaded token list", zap.Int("num_tokens", len(entries)))
}

// NewExchangeServer creates a new exchange server.
// The config is expected to be validated.
func NewExchangeServer(config domain.Config, logger log.Logger) (ExchangeServer, error) {
	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	if config.OTEL != nil && config.OTEL.DSN != "" {
		e.Use(middleware.TraceWithParamsMiddleware(tracerName))
	}

	if config.ServerTimeoutDurationSecs > 0 {
		timeout := time.Duration(config.ServerTimeoutDurationSecs) * time.Second
		e.Server.ReadTimeout = timeout
		e.Server.WriteTimeout = timeout
	}

	server := &exchangeServer{
		e:             e,
		serverAddress: config.ServerAddress,
		logger:        logger,
	}

	tokensConfig := domain.TokensConfig{}
	if config.Tokens != nil {
		tokensConfig = *config.Tokens
	}

	// Initialize tokens usecase
	server.tokensUseCase = tokensusecase.NewTokensUsecase(tokensusecase.DefaultTokenEntries(), tokensConfig)

	// Replace the built-in tokens from the token list if configured.
	if tokensConfig.TokenListSource != "" {
		loader := tokensusecase.NewTokenListFetcher(tokensConfig.TokenListSource, tokensusecase.GetTokensFromTokenList)
		if err := loader.FetchAndUpdateTokens(server.loadTokens); err != nil {
			return nil, err
		}

		server.tokenListLoader = loader
		server.tokenListRefreshInterval = time.Duration(tokensConfig.TokenListRefreshIntervalSecs) * time.Second
	}

	// Initialize quote usecase
	quoteUseCase := quoteusecase.NewQuoteUsecase(osmomath.MustNewDecFromStr(config.Exchange.FeeRate))

	// Initialize session usecase
	newWallet, newFallbackWallet, checkWallet := newWalletFactories(*config.Wallet, logger)

	sessionUseCase, err := sessionusecase.NewSessionUsecase(server.tokensUseCase, quoteUseCase, newWallet, newFallbackWallet, sessionusecase.NewConfig(config), logger)
	if err != nil {
		return nil, err
	}
	server.sessionUseCase = sessionUseCase

	// HTTP handlers
	systemhttpdelivery.NewSystemHandler(e, config, logger, checkWallet)
	tokenshttpdelivery.NewTokensHandler(e, server.tokensUseCase, logger)
	quotehttpdelivery.NewQuoteHandler(e, quoteUseCase, config.Exchange.DefaultSlippagePercent, logger)
	sessionhttpdelivery.NewSessionHandler(e, sessionUseCase, logger)

	return server, nil
}

// newWalletFactories returns the per-session wallet factories and the health check of the configured provider.
// The fallback factory and health check are nil when not applicable.
func newWalletFactories(config domain.WalletConfig, logger log.Logger) (sessionusecase.WalletFactory, sessionusecase.WalletFactory, systemhttpdelivery.WalletHealthCheck) {
	newSimulatedWallet := func() domain.WalletProvider {
		return simulated.New(
			simulated.WithAddress(config.SimulatedAddress),
			simulated.WithLiquiditySeed(config.SimulatedLiquiditySeed),
		)
	}

	if config.Provider != domain.EthereumWalletProvider {
		return newSimulatedWallet, nil, nil
	}

	// Every session owns its connection.
	newEthereumWallet := func() domain.WalletProvider {
		return ethereum.New(config, ethereum.Dial, logger)
	}

	healthCheckWallet := ethereum.New(config, ethereum.Dial, logger)

	var newFallbackWallet sessionusecase.WalletFactory
	if config.SimulationFallback {
		newFallbackWallet = newSimulatedWallet
	}

	return newEthereumWallet, newFallbackWallet, healthCheckWallet.HealthCheck
}
