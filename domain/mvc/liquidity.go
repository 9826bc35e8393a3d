package mvc

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/Apalugobang/tempo-dex/domain"
)

// LiquidityLedger tracks the LP balance of a single session.
// Every successful Add or Remove appends exactly one record to the
// transaction repository it was created with. Failed calls change nothing.
type LiquidityLedger interface {
	// Add deposits the raw amount.
	Add(amount string) (domain.Transaction, error)

	// Remove withdraws the raw amount.
	// Returns InsufficientBalanceError if the amount exceeds the balance.
	Remove(amount string) (domain.Transaction, error)

	// Balance returns the current LP balance.
	Balance() osmomath.Dec

	// Reset sets the balance without recording a transaction.
	Reset(balance osmomath.Dec)
}
