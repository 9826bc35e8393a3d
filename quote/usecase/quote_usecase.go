package usecase

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

// DefaultFeeRate is the flat swap fee of 0.3%.
var DefaultFeeRate = osmomath.NewDecWithPrec(3, 3)

type quoteUsecase struct {
	feeRate osmomath.Dec
}

var _ mvc.QuoteUsecase = &quoteUsecase{}

// NewQuoteUsecase will create new a quoteUsecase object representation of mvc.QuoteUsecase interface
func NewQuoteUsecase(feeRate osmomath.Dec) mvc.QuoteUsecase {
	return &quoteUsecase{
		feeRate: feeRate,
	}
}

// GetQuote implements mvc.QuoteUsecase.
func (q *quoteUsecase) GetQuote(inputAmount string, slippageTolerance osmomath.Dec) (domain.Quote, bool, error) {
	quote, ok, err := ComputeQuote(inputAmount, q.feeRate, slippageTolerance)
	if err != nil || !ok {
		return quote, ok, err
	}

	domain.TempoQuotesCounter.Inc()

	return quote, true, nil
}

// GetFeeRate implements mvc.QuoteUsecase.
func (q *quoteUsecase) GetFeeRate() osmomath.Dec {
	return q.feeRate
}

// ComputeQuote computes the flat-fee quote for the raw input amount:
//
//	output = input * (1 - feeRate)
//	minimumReceived = output * (1 - slippageTolerance)
//	fee = input * feeRate
//
// Returns false if the input is empty, not a number or not positive. That is
// not an error, there is simply no quote to show.
// Returns ValidationError if the slippage tolerance is outside of [0, 1).
func ComputeQuote(inputAmount string, feeRate, slippageTolerance osmomath.Dec) (domain.Quote, bool, error) {
	if slippageTolerance.IsNil() || slippageTolerance.IsNegative() || slippageTolerance.GTE(osmomath.OneDec()) {
		return domain.Quote{}, false, domain.ValidationError{Field: "slippage", Reason: "slippage tolerance must be at least 0 and below 1"}
	}

	input, ok := domain.ParseAmount(inputAmount)
	if !ok || !input.IsPositive() {
		return domain.Quote{}, false, nil
	}

	output := input.Mul(osmomath.OneDec().Sub(feeRate))

	return domain.Quote{
		InputAmount:       input,
		FeeRate:           feeRate,
		SlippageTolerance: slippageTolerance,
		OutputAmount:      output,
		FeeAmount:         input.Mul(feeRate),
		MinimumReceived:   output.Mul(osmomath.OneDec().Sub(slippageTolerance)),
	}, true, nil
}
