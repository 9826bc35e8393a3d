package domain

import (
	"fmt"
	"time"
)

// TransactionType is the kind of a committed ledger record.
type TransactionType string

const (
	SwapTransaction            TransactionType = "Swap"
	AddLiquidityTransaction    TransactionType = "AddLiquidity"
	RemoveLiquidityTransaction TransactionType = "RemoveLiquidity"
)

// TransactionStatus is the settlement status of a transaction.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "Success"
	// TransactionPending and TransactionFailed are reserved for an external settlement step.
	// Records committed by the exchange are always TransactionSuccess.
	TransactionPending TransactionStatus = "Pending"
	TransactionFailed  TransactionStatus = "Failed"
)

// LiquidityPositionSymbol is the from symbol recorded for liquidity operations.
const LiquidityPositionSymbol = "LP"

// JustNowLabel is the relative timestamp of a record created less than a minute ago.
const JustNowLabel = "Just now"

// Transaction is an immutable committed ledger record.
type Transaction struct {
	ID         string            `json:"id"`
	Type       TransactionType   `json:"type"`
	FromSymbol string            `json:"from_symbol"`
	ToSymbol   string            `json:"to_symbol"`
	Amount     string            `json:"amount"`
	Timestamp  string            `json:"timestamp"`
	Status     TransactionStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewTransaction returns a committed transaction created at createdAt.
func NewTransaction(id string, txType TransactionType, fromSymbol, toSymbol, amount string, createdAt time.Time) Transaction {
	return Transaction{
		ID:         id,
		Type:       txType,
		FromSymbol: fromSymbol,
		ToSymbol:   toSymbol,
		Amount:     amount,
		Timestamp:  JustNowLabel,
		Status:     TransactionSuccess,
		CreatedAt:  createdAt,
	}
}

// WithRelativeTimestamp returns a copy of the transaction with the timestamp label
// relative to now.
func (t Transaction) WithRelativeTimestamp(now time.Time) Transaction {
	t.Timestamp = RelativeTimestamp(t.CreatedAt, now)
	return t
}

// RelativeTimestamp formats the age of createdAt relative to now.
func RelativeTimestamp(createdAt, now time.Time) string {
	age := now.Sub(createdAt)
	switch {
	case age < time.Minute:
		return JustNowLabel
	case age < time.Hour:
		return fmt.Sprintf("%d min ago", int(age/time.Minute))
	case age < 24*time.Hour:
		return fmt.Sprintf("%d h ago", int(age/time.Hour))
	default:
		return fmt.Sprintf("%d d ago", int(age/(24*time.Hour)))
	}
}
