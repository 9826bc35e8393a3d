package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/log"
)

const (
	amountField          = "amount"
	slippagePresetField  = "slippage_percent"
	deadlineMinutesField = "deadline_minutes"
)

// exchangeSession is the state of a single user session.
// It is not safe for concurrent use. All access goes through the session actor.
type exchangeSession struct {
	id string

	identity domain.WalletIdentity
	// wallet is the configured provider, fallbackWallet the simulated one used when
	// the configured provider is absent. activeWallet is the one that connected.
	wallet         domain.WalletProvider
	fallbackWallet domain.WalletProvider
	activeWallet   domain.WalletProvider

	tokens       mvc.TokenRegistry
	quotes       mvc.QuoteUsecase
	liquidity    mvc.LiquidityLedger
	transactions mvc.TransactionRepository

	fromKey         string
	toKey           string
	fromAmount      string
	toAmount        string
	quote           *domain.QuoteView
	liquidityAmount string

	settings domain.Settings
	presets  []string

	swapState domain.SwapState
	pending   *domain.PendingSwap
	// expiredID is the id of the last confirmation that expired before being confirmed.
	expiredID string

	confirmationTimeout time.Duration

	now    func() time.Time
	newID  func() string
	logger log.Logger
}

func (s *exchangeSession) connect(ctx context.Context) error {
	if s.identity.Connected {
		return nil
	}

	active := s.wallet
	identity, err := active.Connect(ctx)
	if errors.Is(err, domain.ErrWalletProviderAbsent) && s.fallbackWallet != nil {
		s.logger.Info("wallet provider absent, falling back to simulated wallet", zap.String("session_id", s.id), zap.String("provider", active.Name()), zap.Error(err))

		active = s.fallbackWallet
		identity, err = active.Connect(ctx)
		identity.Simulated = true
	}
	if err != nil {
		return err
	}

	if identity.LiquiditySeed != "" {
		seed, ok := domain.ParseAmount(identity.LiquiditySeed)
		if ok {
			s.liquidity.Reset(seed)
		} else {
			s.logger.Warn("ignoring invalid liquidity seed", zap.String("session_id", s.id), zap.String("seed", identity.LiquiditySeed))
		}
	}

	identity.Connected = true
	s.identity = identity
	s.activeWallet = active

	s.logger.Debug("wallet connected", zap.String("session_id", s.id), zap.String("address", domain.ShortAddress(identity.Address)), zap.Bool("simulated", identity.Simulated))

	return nil
}

func (s *exchangeSession) disconnect(ctx context.Context) {
	s.releaseWallet(ctx)

	s.identity = domain.WalletIdentity{}
	s.liquidity.Reset(osmomath.ZeroDec())
	s.dropPending()
}

// releaseWallet disconnects the active wallet, if any. Failures are logged only.
func (s *exchangeSession) releaseWallet(ctx context.Context) {
	if s.activeWallet == nil {
		return
	}

	if err := s.activeWallet.Disconnect(ctx); err != nil {
		s.logger.Warn("failed to disconnect wallet", zap.String("session_id", s.id), zap.String("provider", s.activeWallet.Name()), zap.Error(err))
	}
	s.activeWallet = nil
}

func (s *exchangeSession) updateSettings(update domain.SettingsUpdate) error {
	settings := s.settings

	if update.SlippagePercent != nil {
		preset := strings.TrimSpace(*update.SlippagePercent)
		if !s.isPreset(preset) {
			return domain.ValidationError{
				Field:  slippagePresetField,
				Reason: fmt.Sprintf("must be one of %s", strings.Join(s.presets, ", ")),
			}
		}

		settings.SlippagePercent = preset
		settings.CustomSlippagePercent = ""
	}

	if update.CustomSlippagePercent != nil {
		custom := strings.TrimSpace(*update.CustomSlippagePercent)
		if custom != "" {
			if _, err := domain.ParseSlippagePercent(custom); err != nil {
				return err
			}
		}

		settings.CustomSlippagePercent = custom
	}

	if update.DeadlineMinutes != nil {
		if *update.DeadlineMinutes < 1 {
			return domain.ValidationError{Field: deadlineMinutesField, Reason: "must be at least 1 minute"}
		}

		settings.DeadlineMinutes = *update.DeadlineMinutes
	}

	s.settings = settings
	s.recomputeQuote()

	return nil
}

func (s *exchangeSession) isPreset(percent string) bool {
	for _, preset := range s.presets {
		if domain.PercentEqual(preset, percent) {
			return true
		}
	}
	return false
}

func (s *exchangeSession) setFromAmount(amount string) {
	s.fromAmount = amount
	s.recomputeQuote()
}

func (s *exchangeSession) selectTokens(fromKey, toKey string) error {
	if err := domain.ValidateTokenPair(fromKey, toKey); err != nil {
		return err
	}

	for _, key := range []string{fromKey, toKey} {
		if _, ok := s.tokens.Get(key); !ok {
			return domain.ValidationError{Field: "tokens", Reason: fmt.Sprintf("token (%s) is not registered", key)}
		}
	}

	s.fromKey, s.toKey = fromKey, toKey
	s.recomputeQuote()

	return nil
}

func (s *exchangeSession) switchTokens() {
	s.fromKey, s.toKey = s.toKey, s.fromKey
	s.fromAmount = s.toAmount
	s.recomputeQuote()
}

// recomputeQuote derives the output amount from the current input and settings.
// The output is cleared when the input does not produce a quote.
func (s *exchangeSession) recomputeQuote() {
	s.quote = nil
	s.toAmount = ""

	slippage, err := domain.ParseSlippagePercent(s.settings.EffectiveSlippagePercent())
	if err != nil {
		s.logger.Error("invalid session slippage", zap.String("session_id", s.id), zap.Error(err))
		return
	}

	quote, ok, err := s.quotes.GetQuote(s.fromAmount, slippage)
	if err != nil {
		s.logger.Error("failed to compute quote", zap.String("session_id", s.id), zap.Error(err))
		return
	}
	if !ok {
		return
	}

	view := quote.View()
	s.quote = &view
	s.toAmount = view.OutputAmount
}

func (s *exchangeSession) requestSwap(ctx context.Context) (domain.SwapResult, error) {
	if !s.identity.Connected {
		if err := s.connect(ctx); err != nil {
			return domain.SwapResult{}, err
		}

		return domain.SwapResult{Outcome: domain.SwapConnectRequired}, nil
	}

	s.swapState = domain.SwapValidating

	if _, err := domain.ParsePositiveAmount(amountField, s.fromAmount); err != nil {
		s.dropPending()
		return domain.SwapResult{}, err
	}

	s.recomputeQuote()
	if s.quote == nil {
		s.dropPending()
		return domain.SwapResult{}, domain.ErrInternalServerError
	}

	now := s.now()
	pending := &domain.PendingSwap{
		ID:         s.newID(),
		FromSymbol: s.token(s.fromKey).Token.Symbol,
		ToSymbol:   s.token(s.toKey).Token.Symbol,
		Amount:     strings.TrimSpace(s.fromAmount),
		Quote:      *s.quote,
		CreatedAt:  now,
	}
	if s.confirmationTimeout > 0 {
		pending.ExpiresAt = now.Add(s.confirmationTimeout)
	}

	s.pending = pending
	s.swapState = domain.SwapConfirming

	result := *pending
	return domain.SwapResult{Outcome: domain.SwapAwaitingConfirm, Pending: &result}, nil
}

func (s *exchangeSession) confirmSwap(confirmationID string) (domain.SwapResult, error) {
	pending, err := s.matchPending(confirmationID)
	if err != nil {
		return domain.SwapResult{}, err
	}

	if pending.IsExpired(s.now()) {
		s.expirePending()
		return domain.SwapResult{}, domain.ConfirmationExpiredError{ConfirmationID: pending.ID}
	}

	s.swapState = domain.SwapCommitted

	tx := domain.NewTransaction(s.newID(), domain.SwapTransaction, pending.FromSymbol, pending.ToSymbol, pending.Amount, s.now())
	s.transactions.Append(tx)
	domain.TempoTransactionsCounter.WithLabelValues(string(domain.SwapTransaction)).Inc()

	s.fromAmount = ""
	s.recomputeQuote()
	s.dropPending()

	return domain.SwapResult{
		Outcome:     domain.SwapOutcomeCommitted,
		Transaction: &tx,
		Message:     domain.SwapSuccessMessage,
	}, nil
}

func (s *exchangeSession) rejectSwap(confirmationID string) (domain.SwapResult, error) {
	if _, err := s.matchPending(confirmationID); err != nil {
		return domain.SwapResult{}, err
	}

	s.dropPending()

	return domain.SwapResult{Outcome: domain.SwapOutcomeRejected}, nil
}

// matchPending returns the pending confirmation with the given id.
// An empty id matches the current pending confirmation.
func (s *exchangeSession) matchPending(confirmationID string) (domain.PendingSwap, error) {
	if s.pending == nil {
		if confirmationID != "" && confirmationID == s.expiredID {
			return domain.PendingSwap{}, domain.ConfirmationExpiredError{ConfirmationID: confirmationID}
		}
		return domain.PendingSwap{}, domain.NoPendingConfirmationError{ConfirmationID: confirmationID}
	}

	if confirmationID != "" && confirmationID != s.pending.ID {
		return domain.PendingSwap{}, domain.NoPendingConfirmationError{ConfirmationID: confirmationID}
	}

	return *s.pending, nil
}

func (s *exchangeSession) expirePending() {
	if s.pending != nil {
		s.expiredID = s.pending.ID
	}
	s.dropPending()
}

func (s *exchangeSession) dropPending() {
	s.pending = nil
	s.swapState = domain.SwapIdle
}

func (s *exchangeSession) addLiquidity(amount string) (domain.LiquidityResult, error) {
	s.liquidityAmount = amount

	if !s.identity.Connected {
		return domain.LiquidityResult{}, domain.NotConnectedError{Action: "add liquidity"}
	}

	tx, err := s.liquidity.Add(amount)
	if err != nil {
		return domain.LiquidityResult{}, err
	}

	return s.liquidityResult(tx, domain.LiquidityAddedMessage), nil
}

func (s *exchangeSession) removeLiquidity(amount string) (domain.LiquidityResult, error) {
	s.liquidityAmount = amount

	if !s.identity.Connected {
		return domain.LiquidityResult{}, domain.NotConnectedError{Action: "remove liquidity"}
	}

	tx, err := s.liquidity.Remove(amount)
	if err != nil {
		return domain.LiquidityResult{}, err
	}

	return s.liquidityResult(tx, domain.LiquidityRemovedMessage), nil
}

func (s *exchangeSession) liquidityResult(tx domain.Transaction, message string) domain.LiquidityResult {
	s.liquidityAmount = ""

	return domain.LiquidityResult{
		LPBalance:   domain.FormatAmount(s.liquidity.Balance()),
		Transaction: tx,
		Message:     message,
	}
}

func (s *exchangeSession) importToken(address string) (domain.TokenEntry, error) {
	return s.tokens.Import(strings.TrimSpace(address))
}

// getTransactions returns the ledger newest first with timestamps relative to now.
func (s *exchangeSession) getTransactions() []domain.Transaction {
	now := s.now()

	transactions := s.transactions.GetAll()
	for i := range transactions {
		transactions[i] = transactions[i].WithRelativeTimestamp(now)
	}

	return transactions
}

func (s *exchangeSession) token(key string) domain.TokenEntry {
	entry, _ := s.tokens.Get(key)
	return entry
}

// snapshot returns the full session view. An expired pending confirmation is dropped.
func (s *exchangeSession) snapshot() domain.SessionSnapshot {
	if s.pending != nil && s.pending.IsExpired(s.now()) {
		s.expirePending()
	}

	snapshot := domain.SessionSnapshot{
		ID:              s.id,
		Identity:        s.identity,
		FromToken:       s.token(s.fromKey),
		ToToken:         s.token(s.toKey),
		FromAmount:      s.fromAmount,
		ToAmount:        s.toAmount,
		LiquidityAmount: s.liquidityAmount,
		LPBalance:       domain.FormatAmount(s.liquidity.Balance()),
		Settings:        s.settings,
		SwapState:       s.swapState,
		Transactions:    s.getTransactions(),
	}

	if s.quote != nil {
		quote := *s.quote
		snapshot.Quote = &quote
	}

	if s.pending != nil {
		pending := *s.pending
		snapshot.Pending = &pending
	}

	return snapshot
}
