package main

import (
	"github.com/getsentry/sentry-go"

	"github.com/Apalugobang/tempo-dex/domain"
)

// sampledRoutes returns the sampling rate per route template.
// Spans are named by route template in the trace middleware.
func sampledRoutes(otelConfig *domain.OTELConfig) map[string]float64 {
	return map[string]float64{
		"/quote":                         otelConfig.CustomSampleRate.Quote,
		"/sessions/:id/swap/amount":      otelConfig.CustomSampleRate.Quote,
		"/sessions/:id/swap":             otelConfig.CustomSampleRate.Other,
		"/sessions/:id/swap/confirm":     otelConfig.CustomSampleRate.Other,
		"/sessions/:id/wallet/connect":   otelConfig.CustomSampleRate.Other,
		"/sessions/:id/liquidity/add":    otelConfig.CustomSampleRate.Other,
		"/sessions/:id/liquidity/remove": otelConfig.CustomSampleRate.Other,
	}
}

// newTracesSampler samples only the given routes. Everything else is dropped.
func newTracesSampler(rates map[string]float64) sentry.TracesSampler {
	return func(ctx sentry.SamplingContext) float64 {
		if ctx.Span == nil {
			return 0
		}

		if rate, ok := rates[ctx.Span.Name]; ok {
			return rate
		}

		return 0
	}
}

func initSentry(otelConfig *domain.OTELConfig, hostName string, isDebug bool) error {
	return sentry.Init(sentry.ClientOptions{
		ServerName:         hostName,
		Dsn:                otelConfig.DSN,
		SampleRate:         otelConfig.SampleRate,
		EnableTracing:      otelConfig.EnableTracing,
		Debug:              isDebug,
		TracesSampler:      newTracesSampler(sampledRoutes(otelConfig)),
		ProfilesSampleRate: otelConfig.ProfilesSampleRate,
		Environment:        otelConfig.Environment,
	})
}
