package mocks

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

// QuoteUsecaseMock is a mock implementation of the QuoteUsecase interface
type QuoteUsecaseMock struct {
	GetQuoteFunc   func(inputAmount string, slippageTolerance osmomath.Dec) (domain.Quote, bool, error)
	GetFeeRateFunc func() osmomath.Dec
}

var _ mvc.QuoteUsecase = &QuoteUsecaseMock{}

func (m *QuoteUsecaseMock) GetQuote(inputAmount string, slippageTolerance osmomath.Dec) (domain.Quote, bool, error) {
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(inputAmount, slippageTolerance)
	}
	panic("unimplemented")
}

func (m *QuoteUsecaseMock) GetFeeRate() osmomath.Dec {
	if m.GetFeeRateFunc != nil {
		return m.GetFeeRateFunc()
	}
	return osmomath.ZeroDec()
}
