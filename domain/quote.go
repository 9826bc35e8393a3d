package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// PriceImpactLabel is reported for every quote since the flat-fee model has no reserves to move.
const PriceImpactLabel = "< 0.01%"

// Quote is the derived swap quote.
// All amounts are kept at full precision and only rounded when converted to a view.
type Quote struct {
	InputAmount       osmomath.Dec
	FeeRate           osmomath.Dec
	SlippageTolerance osmomath.Dec
	OutputAmount      osmomath.Dec
	FeeAmount         osmomath.Dec
	MinimumReceived   osmomath.Dec
}

// QuoteView is the display representation of a Quote.
type QuoteView struct {
	InputAmount string `json:"input_amount"`
	// FeeRatePercent is the fee rate in percent, e.g. "0.3".
	FeeRatePercent string `json:"fee_rate_percent"`
	// SlippagePercent is the slippage tolerance in percent, e.g. "0.5".
	SlippagePercent string `json:"slippage_percent"`
	OutputAmount    string `json:"output_amount"`
	FeeAmount       string `json:"fee_amount"`
	MinimumReceived string `json:"minimum_received"`
	// Rate is the output received per one unit of input.
	Rate        string `json:"rate"`
	PriceImpact string `json:"price_impact"`
}

// Rate returns the output amount per one unit of input.
func (q Quote) Rate() osmomath.Dec {
	return osmomath.OneDec().Sub(q.FeeRate)
}

// View formats the quote for display.
func (q Quote) View() QuoteView {
	return QuoteView{
		InputAmount:     FormatAmount(q.InputAmount),
		FeeRatePercent:  FormatPercent(q.FeeRate),
		SlippagePercent: FormatPercent(q.SlippageTolerance),
		OutputAmount:    FormatAmount(q.OutputAmount),
		FeeAmount:       FormatAmount(q.FeeAmount),
		MinimumReceived: FormatAmount(q.MinimumReceived),
		Rate:            FormatAmount(q.Rate()),
		PriceImpact:     PriceImpactLabel,
	}
}
