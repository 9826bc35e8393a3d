package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/domain/workerpool"
	liquidityusecase "github.com/Apalugobang/tempo-dex/liquidity/usecase"
	"github.com/Apalugobang/tempo-dex/log"
	sessionrepo "github.com/Apalugobang/tempo-dex/session/repository"
	transactionsrepo "github.com/Apalugobang/tempo-dex/transactions/repository"
)

// actionQueueSize is the number of actions a session buffers before submitters block.
const actionQueueSize = 16

// WalletFactory returns a new wallet provider for a session.
type WalletFactory func() domain.WalletProvider

// Config defines the per-session defaults.
type Config struct {
	SlippagePresetsPercent []string
	DefaultSlippagePercent string
	DefaultDeadlineMinutes int
	// ConfirmationTimeout expires pending swap confirmations. Zero disables expiry.
	ConfirmationTimeout time.Duration
	MinimumFirstDeposit osmomath.Dec
	MaxSessions         int
}

// NewConfig converts the exchange server config into the session config.
// The config is expected to be validated.
func NewConfig(config domain.Config) Config {
	sessionConfig := Config{
		SlippagePresetsPercent: config.Exchange.SlippagePresetsPercent,
		DefaultSlippagePercent: config.Exchange.DefaultSlippagePercent,
		DefaultDeadlineMinutes: config.Exchange.DefaultDeadlineMinutes,
		ConfirmationTimeout:    time.Duration(config.Exchange.ConfirmationTimeoutSecs) * time.Second,
		MinimumFirstDeposit:    osmomath.ZeroDec(),
	}

	if config.Liquidity != nil && config.Liquidity.MinimumFirstDeposit != "" {
		sessionConfig.MinimumFirstDeposit = osmomath.MustNewDecFromStr(config.Liquidity.MinimumFirstDeposit)
	}

	if config.Session != nil {
		sessionConfig.MaxSessions = config.Session.MaxSessions
	}

	return sessionConfig
}

// sessionActor owns a session and the queue all of its actions run on.
type sessionActor struct {
	session *exchangeSession
	queue   *workerpool.Queue[any]
}

// Stop implements sessionrepo.Stopper.
// It waits for the action in progress and releases the session wallet.
func (a *sessionActor) Stop() {
	a.queue.Stop()
	a.session.releaseWallet(context.Background())
}

type sessionUseCase struct {
	tokens mvc.TokensUsecase
	quotes mvc.QuoteUsecase

	newWallet         WalletFactory
	newFallbackWallet WalletFactory

	sessions sessionrepo.SessionRepository[*sessionActor]

	config Config

	now    func() time.Time
	newID  func() string
	logger log.Logger
}

var _ mvc.SessionUsecase = &sessionUseCase{}

// Option configures the session usecase.
type Option func(*sessionUseCase)

// WithClock sets the clock used by all sessions.
func WithClock(now func() time.Time) Option {
	return func(u *sessionUseCase) {
		u.now = now
	}
}

// WithIDGenerator sets the generator of session, confirmation and transaction ids.
func WithIDGenerator(newID func() string) Option {
	return func(u *sessionUseCase) {
		u.newID = newID
	}
}

// NewSessionUsecase will create a new session use case object.
// newFallbackWallet may be nil, in which case an absent wallet provider fails the connection.
func NewSessionUsecase(tokens mvc.TokensUsecase, quotes mvc.QuoteUsecase, newWallet, newFallbackWallet WalletFactory, config Config, logger log.Logger, opts ...Option) (mvc.SessionUsecase, error) {
	if config.MinimumFirstDeposit.IsNil() {
		config.MinimumFirstDeposit = osmomath.ZeroDec()
	}

	us := &sessionUseCase{
		tokens:            tokens,
		quotes:            quotes,
		newWallet:         newWallet,
		newFallbackWallet: newFallbackWallet,
		config:            config,
		now:               time.Now,
		newID:             uuid.NewString,
		logger:            logger,
	}

	for _, opt := range opts {
		opt(us)
	}

	sessions, err := sessionrepo.New[*sessionActor](config.MaxSessions, func(sessionID string) {
		logger.Debug("session stopped", zap.String("session_id", sessionID))
	})
	if err != nil {
		return nil, err
	}
	us.sessions = sessions

	return us, nil
}

// CreateSession implements mvc.SessionUsecase.
func (u *sessionUseCase) CreateSession(ctx context.Context) (domain.SessionSnapshot, error) {
	session := u.newSession(u.newID())
	snapshot := session.snapshot()

	actor := &sessionActor{
		session: session,
		queue:   workerpool.NewQueue[any](actionQueueSize),
	}
	actor.queue.Start()

	if evicted := u.sessions.Add(session.id, actor); evicted {
		u.logger.Info("evicted least recently used session", zap.Int("max_sessions", u.config.MaxSessions))
	}
	domain.TempoSessionsActiveGauge.Set(float64(u.sessions.Len()))

	return snapshot, nil
}

func (u *sessionUseCase) newSession(sessionID string) *exchangeSession {
	transactions := transactionsrepo.New()

	session := &exchangeSession{
		id:           sessionID,
		wallet:       u.newWallet(),
		tokens:       u.tokens.NewRegistry(),
		quotes:       u.quotes,
		liquidity:    liquidityusecase.NewLiquidityLedger(transactions, u.config.MinimumFirstDeposit, liquidityusecase.WithClock(u.now), liquidityusecase.WithIDGenerator(u.newID)),
		transactions: transactions,
		fromKey:      domain.DefaultFromTokenKey,
		toKey:        domain.DefaultToTokenKey,
		settings: domain.Settings{
			SlippagePercent: u.config.DefaultSlippagePercent,
			DeadlineMinutes: u.config.DefaultDeadlineMinutes,
		},
		presets:             u.config.SlippagePresetsPercent,
		swapState:           domain.SwapIdle,
		confirmationTimeout: u.config.ConfirmationTimeout,
		now:                 u.now,
		newID:               u.newID,
		logger:              u.logger,
	}

	if u.newFallbackWallet != nil {
		session.fallbackWallet = u.newFallbackWallet()
	}

	// A token list may not contain the default pair.
	if _, ok := session.tokens.Get(session.fromKey); !ok {
		session.fromKey, session.toKey = "", ""
		if all := session.tokens.All(); len(all) >= 2 {
			session.fromKey, session.toKey = all[0].Key, all[1].Key
		}
	}

	return session
}

// GetSession implements mvc.SessionUsecase.
func (u *sessionUseCase) GetSession(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return run(ctx, u, "get_session", sessionID, func(s *exchangeSession) (domain.SessionSnapshot, error) {
		return s.snapshot(), nil
	})
}

// DeleteSession implements mvc.SessionUsecase.
func (u *sessionUseCase) DeleteSession(ctx context.Context, sessionID string) error {
	if !u.sessions.Remove(sessionID) {
		return domain.SessionNotFoundError{SessionID: sessionID}
	}

	domain.TempoSessionsActiveGauge.Set(float64(u.sessions.Len()))

	return nil
}

// Connect implements mvc.SessionUsecase.
func (u *sessionUseCase) Connect(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return run(ctx, u, "connect", sessionID, func(s *exchangeSession) (domain.SessionSnapshot, error) {
		if err := s.connect(ctx); err != nil {
			return domain.SessionSnapshot{}, err
		}
		return s.snapshot(), nil
	})
}

// Disconnect implements mvc.SessionUsecase.
func (u *sessionUseCase) Disconnect(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return run(ctx, u, "disconnect", sessionID, func(s *exchangeSession) (domain.SessionSnapshot, error) {
		s.disconnect(ctx)
		return s.snapshot(), nil
	})
}

// UpdateSettings implements mvc.SessionUsecase.
func (u *sessionUseCase) UpdateSettings(ctx context.Context, sessionID string, update domain.SettingsUpdate) (domain.SessionSnapshot, error) {
	return run(ctx, u, "update_settings", sessionID, func(s *exchangeSession) (domain.SessionSnapshot, error) {
		if err := s.updateSettings(update); err != nil {
			return domain.SessionSnapshot{}, err
		}
		return s.snapshot(), nil
	})
}

// SetFromAmount implements mvc.SessionUsecase.
func (u *sessionUseCase) SetFromAmount(ctx context.Context, sessionID string, amount string) (domain.SessionSnapshot, error) {
	return run(ctx, u, "set_from_amount", sessionID, func(s *exchangeSession) (domain.SessionSnapshot, error) {
		s.setFromAmount(amount)
		return s.snapshot(), nil
	})
}

// SelectTokens implements mvc.SessionUsecase.
func (u *sessionUseCase) SelectTokens(ctx context.Context, sessionID string, fromKey, toKey string) (domain.SessionSnapshot, error) {
	return run(ctx, u, "select_tokens", sessionID, func(s *exchangeSession) (domain.SessionSnapshot, error) {
		if err := s.selectTokens(fromKey, toKey); err != nil {
			return domain.SessionSnapshot{}, err
		}
		return s.snapshot(), nil
	})
}

// SwitchTokens implements mvc.SessionUsecase.
func (u *sessionUseCase) SwitchTokens(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	return run(ctx, u, "switch_tokens", sessionID, func(s *exchangeSession) (domain.SessionSnapshot, error) {
		s.switchTokens()
		return s.snapshot(), nil
	})
}

// RequestSwap implements mvc.SessionUsecase.
func (u *sessionUseCase) RequestSwap(ctx context.Context, sessionID string) (domain.SwapResult, error) {
	return run(ctx, u, "request_swap", sessionID, func(s *exchangeSession) (domain.SwapResult, error) {
		return s.requestSwap(ctx)
	})
}

// ConfirmSwap implements mvc.SessionUsecase.
func (u *sessionUseCase) ConfirmSwap(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error) {
	return run(ctx, u, "confirm_swap", sessionID, func(s *exchangeSession) (domain.SwapResult, error) {
		return s.confirmSwap(confirmationID)
	})
}

// RejectSwap implements mvc.SessionUsecase.
func (u *sessionUseCase) RejectSwap(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error) {
	return run(ctx, u, "reject_swap", sessionID, func(s *exchangeSession) (domain.SwapResult, error) {
		return s.rejectSwap(confirmationID)
	})
}

// AddLiquidity implements mvc.SessionUsecase.
func (u *sessionUseCase) AddLiquidity(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error) {
	return run(ctx, u, "add_liquidity", sessionID, func(s *exchangeSession) (domain.LiquidityResult, error) {
		return s.addLiquidity(amount)
	})
}

// RemoveLiquidity implements mvc.SessionUsecase.
func (u *sessionUseCase) RemoveLiquidity(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error) {
	return run(ctx, u, "remove_liquidity", sessionID, func(s *exchangeSession) (domain.LiquidityResult, error) {
		return s.removeLiquidity(amount)
	})
}

// GetTransactions implements mvc.SessionUsecase.
func (u *sessionUseCase) GetTransactions(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	return run(ctx, u, "get_transactions", sessionID, func(s *exchangeSession) ([]domain.Transaction, error) {
		return s.getTransactions(), nil
	})
}

// ImportToken implements mvc.SessionUsecase.
func (u *sessionUseCase) ImportToken(ctx context.Context, sessionID string, address string) (domain.TokenEntry, error) {
	return run(ctx, u, "import_token", sessionID, func(s *exchangeSession) (domain.TokenEntry, error) {
		return s.importToken(address)
	})
}

// GetTokens implements mvc.SessionUsecase.
func (u *sessionUseCase) GetTokens(ctx context.Context, sessionID string) ([]domain.TokenEntry, error) {
	return run(ctx, u, "get_tokens", sessionID, func(s *exchangeSession) ([]domain.TokenEntry, error) {
		return s.tokens.All(), nil
	})
}

// Shutdown implements mvc.SessionUsecase.
func (u *sessionUseCase) Shutdown() {
	u.sessions.Purge()
	domain.TempoSessionsActiveGauge.Set(0)
}

// run submits fn to the actor of the session and waits for its result.
// Failed actions are counted by action and error kind.
func run[T any](ctx context.Context, u *sessionUseCase, action string, sessionID string, fn func(s *exchangeSession) (T, error)) (T, error) {
	var zero T

	actor, ok := u.sessions.Get(sessionID)
	if !ok {
		return zero, domain.SessionNotFoundError{SessionID: sessionID}
	}

	result, err := actor.queue.Submit(ctx, workerpool.Job[any]{
		Task: func() (any, error) {
			result, err := fn(actor.session)
			return result, err
		},
	})
	if errors.Is(err, workerpool.ErrQueueStopped) {
		return zero, domain.SessionNotFoundError{SessionID: sessionID}
	}
	if errors.Is(err, workerpool.ErrJobPanicked) {
		u.logger.Error("session action panicked", zap.String("session_id", sessionID), zap.String("action", action), zap.Error(err))
	}
	if err != nil {
		domain.TempoSessionActionErrorsCounter.WithLabelValues(action, domain.ErrorKind(err)).Inc()

		u.logger.Debug("session action failed",
			zap.String("session_id", sessionID),
			zap.String("action", action),
			zap.String("request_path", domain.GetURLPathFromContext(ctx)),
			zap.Error(err),
		)
		return zero, err
	}

	return result.(T), nil
}
