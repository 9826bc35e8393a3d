package mocks

import (
	"context"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

// SessionUsecaseMock is a mock implementation of the SessionUsecase interface
type SessionUsecaseMock struct {
	CreateSessionFunc   func(ctx context.Context) (domain.SessionSnapshot, error)
	GetSessionFunc      func(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	DeleteSessionFunc   func(ctx context.Context, sessionID string) error
	ConnectFunc         func(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	DisconnectFunc      func(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	UpdateSettingsFunc  func(ctx context.Context, sessionID string, update domain.SettingsUpdate) (domain.SessionSnapshot, error)
	SetFromAmountFunc   func(ctx context.Context, sessionID string, amount string) (domain.SessionSnapshot, error)
	SelectTokensFunc    func(ctx context.Context, sessionID string, fromKey, toKey string) (domain.SessionSnapshot, error)
	SwitchTokensFunc    func(ctx context.Context, sessionID string) (domain.SessionSnapshot, error)
	RequestSwapFunc     func(ctx context.Context, sessionID string) (domain.SwapResult, error)
	ConfirmSwapFunc     func(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error)
	RejectSwapFunc      func(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error)
	AddLiquidityFunc    func(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error)
	RemoveLiquidityFunc func(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error)
	GetTransactionsFunc func(ctx context.Context, sessionID string) ([]domain.Transaction, error)
	ImportTokenFunc     func(ctx context.Context, sessionID string, address string) (domain.TokenEntry, error)
	GetTokensFunc       func(ctx context.Context, sessionID string) ([]domain.TokenEntry, error)
	ShutdownFunc        func()
}

var _ mvc.SessionUsecase = &SessionUsecaseMock{}

func (m *SessionUsecaseMock) CreateSession(ctx context.Context) (domain.SessionSnapshot, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) GetSession(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) Connect(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) Disconnect(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) UpdateSettings(ctx context.Context, sessionID string, update domain.SettingsUpdate) (domain.SessionSnapshot, error) {
	if m.UpdateSettingsFunc != nil {
		return m.UpdateSettingsFunc(ctx, sessionID, update)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) SetFromAmount(ctx context.Context, sessionID string, amount string) (domain.SessionSnapshot, error) {
	if m.SetFromAmountFunc != nil {
		return m.SetFromAmountFunc(ctx, sessionID, amount)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) SelectTokens(ctx context.Context, sessionID string, fromKey, toKey string) (domain.SessionSnapshot, error) {
	if m.SelectTokensFunc != nil {
		return m.SelectTokensFunc(ctx, sessionID, fromKey, toKey)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) SwitchTokens(ctx context.Context, sessionID string) (domain.SessionSnapshot, error) {
	if m.SwitchTokensFunc != nil {
		return m.SwitchTokensFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) RequestSwap(ctx context.Context, sessionID string) (domain.SwapResult, error) {
	if m.RequestSwapFunc != nil {
		return m.RequestSwapFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) ConfirmSwap(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error) {
	if m.ConfirmSwapFunc != nil {
		return m.ConfirmSwapFunc(ctx, sessionID, confirmationID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) RejectSwap(ctx context.Context, sessionID string, confirmationID string) (domain.SwapResult, error) {
	if m.RejectSwapFunc != nil {
		return m.RejectSwapFunc(ctx, sessionID, confirmationID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) AddLiquidity(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error) {
	if m.AddLiquidityFunc != nil {
		return m.AddLiquidityFunc(ctx, sessionID, amount)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) RemoveLiquidity(ctx context.Context, sessionID string, amount string) (domain.LiquidityResult, error) {
	if m.RemoveLiquidityFunc != nil {
		return m.RemoveLiquidityFunc(ctx, sessionID, amount)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) GetTransactions(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	if m.GetTransactionsFunc != nil {
		return m.GetTransactionsFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) ImportToken(ctx context.Context, sessionID string, address string) (domain.TokenEntry, error) {
	if m.ImportTokenFunc != nil {
		return m.ImportTokenFunc(ctx, sessionID, address)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) GetTokens(ctx context.Context, sessionID string) ([]domain.TokenEntry, error) {
	if m.GetTokensFunc != nil {
		return m.GetTokensFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

func (m *SessionUsecaseMock) Shutdown() {
	if m.ShutdownFunc != nil {
		m.ShutdownFunc()
	}
}
