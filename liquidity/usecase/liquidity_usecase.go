package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

const amountField = "amount"

type liquidityLedger struct {
	balance osmomath.Dec
	// Deposits into an empty position must exceed this amount when positive.
	minimumFirstDeposit osmomath.Dec

	transactions mvc.TransactionRepository

	now   func() time.Time
	newID func() string
}

var _ mvc.LiquidityLedger = &liquidityLedger{}

// LedgerOption configures the liquidity ledger.
type LedgerOption func(*liquidityLedger)

// WithClock sets the clock used to timestamp records.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *liquidityLedger) {
		l.now = now
	}
}

// WithIDGenerator sets the generator of record ids.
func WithIDGenerator(newID func() string) LedgerOption {
	return func(l *liquidityLedger) {
		l.newID = newID
	}
}

// NewLiquidityLedger returns an empty ledger recording into transactions.
// The ledger is not safe for concurrent use.
func NewLiquidityLedger(transactions mvc.TransactionRepository, minimumFirstDeposit osmomath.Dec, opts ...LedgerOption) mvc.LiquidityLedger {
	if minimumFirstDeposit.IsNil() {
		minimumFirstDeposit = osmomath.ZeroDec()
	}

	ledger := &liquidityLedger{
		balance:             osmomath.ZeroDec(),
		minimumFirstDeposit: minimumFirstDeposit,
		transactions:        transactions,
		now:                 time.Now,
		newID:               uuid.NewString,
	}

	for _, opt := range opts {
		opt(ledger)
	}

	return ledger
}

// Add implements mvc.LiquidityLedger.
func (l *liquidityLedger) Add(amountStr string) (domain.Transaction, error) {
	amount, err := domain.ParsePositiveAmount(amountField, amountStr)
	if err != nil {
		return domain.Transaction{}, err
	}

	if l.minimumFirstDeposit.IsPositive() && l.balance.IsZero() && !amount.GT(l.minimumFirstDeposit) {
		return domain.Transaction{}, domain.ValidationError{
			Field:  amountField,
			Reason: fmt.Sprintf("first deposit must be greater than the minimum of %s", domain.FormatAmount(l.minimumFirstDeposit)),
		}
	}

	balance := l.balance.Add(amount)
	if balance.BigInt().BitLen() > domain.MaxAmountBitLen {
		return domain.Transaction{}, domain.ValidationError{Field: amountField, Reason: "liquidity balance would exceed the maximum amount"}
	}

	tx := l.record(domain.AddLiquidityTransaction, amountStr)
	l.balance = balance

	return tx, nil
}

// Remove implements mvc.LiquidityLedger.
func (l *liquidityLedger) Remove(amountStr string) (domain.Transaction, error) {
	amount, err := domain.ParsePositiveAmount(amountField, amountStr)
	if err != nil {
		return domain.Transaction{}, err
	}

	if amount.GT(l.balance) {
		return domain.Transaction{}, domain.InsufficientBalanceError{
			Requested: domain.FormatAmount(amount),
			Available: domain.FormatAmount(l.balance),
		}
	}

	tx := l.record(domain.RemoveLiquidityTransaction, amountStr)
	l.balance = l.balance.Sub(amount)

	return tx, nil
}

// Balance implements mvc.LiquidityLedger.
func (l *liquidityLedger) Balance() osmomath.Dec {
	return l.balance
}

// Reset implements mvc.LiquidityLedger.
func (l *liquidityLedger) Reset(balance osmomath.Dec) {
	if balance.IsNil() || balance.IsNegative() {
		balance = osmomath.ZeroDec()
	}
	l.balance = balance
}

// record appends the record of a validated operation. It cannot fail, so the
// caller applies the balance change right after.
func (l *liquidityLedger) record(txType domain.TransactionType, amountStr string) domain.Transaction {
	tx := domain.NewTransaction(l.newID(), txType, domain.LiquidityPositionSymbol, "", strings.TrimSpace(amountStr), l.now())
	l.transactions.Append(tx)

	domain.TempoTransactionsCounter.WithLabelValues(string(txType)).Inc()

	return tx
}
