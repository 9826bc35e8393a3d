package domain

import (
	"time"
)

// SwapState is the state of the swap state machine of a session.
type SwapState string

const (
	SwapIdle       SwapState = "idle"
	SwapValidating SwapState = "validating"
	SwapConfirming SwapState = "confirming"
	SwapCommitted  SwapState = "committed"
)

// SwapOutcome describes the result of a swap action.
type SwapOutcome string

const (
	// SwapConnectRequired is returned when a swap was requested without a connected wallet.
	// The wallet connect flow was started instead and the swap did not progress.
	SwapConnectRequired  SwapOutcome = "connect_required"
	SwapAwaitingConfirm  SwapOutcome = "awaiting_confirmation"
	SwapOutcomeCommitted SwapOutcome = "committed"
	SwapOutcomeRejected  SwapOutcome = "rejected"
)

const (
	SwapSuccessMessage      = "Swap successful"
	LiquidityAddedMessage   = "Liquidity added"
	LiquidityRemovedMessage = "Liquidity removed"
)

// Settings are the per-session user settings.
type Settings struct {
	// SlippagePercent is the selected slippage preset in percent.
	SlippagePercent string `json:"slippage_percent"`
	// CustomSlippagePercent overrides SlippagePercent when non-empty.
	CustomSlippagePercent string `json:"custom_slippage_percent"`
	// DeadlineMinutes is stored but not enforced.
	DeadlineMinutes int `json:"deadline_minutes"`
}

// EffectiveSlippagePercent returns the custom slippage if set, the preset otherwise.
func (s Settings) EffectiveSlippagePercent() string {
	if s.CustomSlippagePercent != "" {
		return s.CustomSlippagePercent
	}
	return s.SlippagePercent
}

// SettingsUpdate is a partial settings update. Nil fields are left unchanged.
type SettingsUpdate struct {
	SlippagePercent       *string `json:"slippage_percent"`
	CustomSlippagePercent *string `json:"custom_slippage_percent"`
	DeadlineMinutes       *int    `json:"deadline_minutes"`
}

// PendingSwap is a swap awaiting explicit confirmation.
// It carries the quote snapshot the user is asked to confirm.
type PendingSwap struct {
	ID         string    `json:"id"`
	FromSymbol string    `json:"from_symbol"`
	ToSymbol   string    `json:"to_symbol"`
	Amount     string    `json:"amount"`
	Quote      QuoteView `json:"quote"`
	CreatedAt  time.Time `json:"created_at"`
	// ExpiresAt is zero when the confirmation never expires.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// IsExpired returns true if the confirmation window has passed at now.
func (p PendingSwap) IsExpired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && !now.Before(p.ExpiresAt)
}

// SwapResult is the result of a swap action.
type SwapResult struct {
	Outcome SwapOutcome  `json:"outcome"`
	Pending *PendingSwap `json:"pending,omitempty"`
	// Transaction is set when the swap was committed.
	Transaction *Transaction `json:"transaction,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// LiquidityResult is the result of a liquidity action.
type LiquidityResult struct {
	LPBalance   string      `json:"lp_balance"`
	Transaction Transaction `json:"transaction"`
	Message     string      `json:"message"`
}

// SessionSnapshot is the full view of an exchange session.
type SessionSnapshot struct {
	ID        string         `json:"id"`
	Identity  WalletIdentity `json:"identity"`
	FromToken TokenEntry     `json:"from_token"`
	ToToken   TokenEntry     `json:"to_token"`
	// FromAmount is the raw input as entered.
	FromAmount string `json:"from_amount"`
	// ToAmount is the formatted quote output, empty when there is no quote.
	ToAmount        string        `json:"to_amount"`
	Quote           *QuoteView    `json:"quote,omitempty"`
	LiquidityAmount string        `json:"liquidity_amount"`
	LPBalance       string        `json:"lp_balance"`
	Settings        Settings      `json:"settings"`
	SwapState       SwapState     `json:"swap_state"`
	Pending         *PendingSwap  `json:"pending,omitempty"`
	Transactions    []Transaction `json:"transactions"`
}
