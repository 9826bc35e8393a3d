package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/log"
)

// WalletHealthCheck checks that the wallet provider is reachable.
type WalletHealthCheck func(ctx context.Context) error

type SystemHandler struct {
	logger      log.Logger
	config      domain.Config
	checkWallet WalletHealthCheck
}

// HealthResponse is the response of the health check endpoint.
type HealthResponse struct {
	Status         string `json:"status"`
	WalletProvider string `json:"wallet_provider"`
	WalletStatus   string `json:"wallet_status"`
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "

	statusRunning     = "running"
	statusUnavailable = "unavailable"
	statusFallback    = "simulation_fallback"

	walletHealthCheckTimeout = 5 * time.Second
)

// NewSystemHandler will initialize the system resources endpoints.
// checkWallet may be nil if the wallet provider needs no connectivity.
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger, checkWallet WalletHealthCheck) {
	handler := &SystemHandler{
		logger:      logger,
		config:      config,
		checkWallet: checkWallet,
	}

	// if debug mod, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("docs/swagger.json"), echoSwagger.URL("swagger.yaml")))
}

// GetConfig returns the config for the exchange server
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config)
}

func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string from the ldflags
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("no version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	index = strings.Index(substring, whiteSpacePlaceholder)
	if index == -1 {
		// version is the last flag
		return substring, nil
	}

	return substring[:index], nil
}

// GetHealthStatus handles health check requests.
// An unreachable wallet provider fails the check unless the simulation fallback is enabled.
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	response := HealthResponse{
		Status:         statusRunning,
		WalletProvider: string(h.walletProvider()),
		WalletStatus:   statusRunning,
	}

	if h.checkWallet == nil {
		return c.JSON(http.StatusOK, response)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), walletHealthCheckTimeout)
	defer cancel()

	if err := h.checkWallet(ctx); err != nil {
		h.logger.Error("Error checking wallet provider status", zap.Error(err))

		if h.config.Wallet != nil && h.config.Wallet.SimulationFallback {
			response.WalletStatus = statusFallback
			return c.JSON(http.StatusOK, response)
		}

		response.Status = statusUnavailable
		response.WalletStatus = statusUnavailable
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *SystemHandler) walletProvider() domain.WalletProviderType {
	if h.config.Wallet == nil {
		return ""
	}
	return h.config.Wallet.Provider
}
