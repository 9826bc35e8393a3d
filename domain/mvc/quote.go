package mvc

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/Apalugobang/tempo-dex/domain"
)

// QuoteUsecase represent the quote's usecases
type QuoteUsecase interface {
	// GetQuote computes the quote for the given raw input amount and slippage tolerance fraction.
	// Returns false if the input does not produce a quote (empty, non-numeric or non-positive).
	// Returns ValidationError if the slippage tolerance is outside of [0, 1).
	GetQuote(inputAmount string, slippageTolerance osmomath.Dec) (domain.Quote, bool, error)

	// GetFeeRate returns the configured flat fee rate.
	GetFeeRate() osmomath.Dec
}
