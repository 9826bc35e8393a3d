package mvc

import (
	"context"

	"github.com/Apalugobang/tempo-dex/domain"
)

// SessionUsecase manages exchange sessions.
// Every session method returns SessionNotFoundError if the session does not exist.
// Actions on the same session are applied one at a time in submission order.
type SessionUsecase interface {
	CreateSession(ctx context.Context) (domain.SessionSnapshot, error)
	GetSession(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Connect connects the session wallet.
	Connect(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	// Disconnect clears the identity, resets the LP display to zero and drops any pending confirmation.
	Disconnect(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)

	UpdateSettings(ctx context.Context, sessionID string, update domain.SettingsUpdate) (domain.SessionSnapshot, error)

	// SetFromAmount stores the raw input and recomputes the quote.
	SetFromAmount(ctx context.Context, sessionID string, amount string) (domain.SessionSnapshot, error)
	SelectTokens(ctx context.Context, sessionID string, fromKey, toKey string) (domain.SessionSnapshot, error)
	// SwitchTokens swaps the pair and carries the previous output into the input.
	SwitchTokens(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)

	// RequestSwap starts the swap flow. If no wallet is connected, the wallet is
	// connected instead and the swap does not progress.
	RequestSwap(ctx context.Context, sessionID string) (domain.SwapResult, error)
	ConfirmSwap(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error)
	RejectSwap(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error)

	AddLiquidity(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error)
	RemoveLiquidity(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error)

	GetTransactions(ctx context.Context, sessionID string) ([]domain.Transaction, error)

	ImportToken(ctx context.Context, sessionID string, address string) (domain.TokenEntry, error)
	GetTokens(ctx context.Context, sessionID string) ([]domain.TokenEntry, error)

	// Shutdown stops all sessions.
	Shutdown()
}
