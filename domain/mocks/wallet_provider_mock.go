package mocks

import (
	"context"

	"github.com/Apalugobang/tempo-dex/domain"
)

// WalletProviderMock is a mock implementation of the WalletProvider interface.
// It counts the calls so tests can assert on the collaborator being invoked.
type WalletProviderMock struct {
	ConnectFunc    func(ctx context.Context) (domain.WalletIdentity, error)
	DisconnectFunc func(ctx context.Context) error
	NameValue      string

	ConnectCalls    int
	DisconnectCalls int
}

var _ domain.WalletProvider = &WalletProviderMock{}

func (m *WalletProviderMock) Connect(ctx context.Context) (domain.WalletIdentity, error) {
	m.ConnectCalls++
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	return domain.WalletIdentity{}, domain.ErrWalletProviderAbsent
}

func (m *WalletProviderMock) Disconnect(ctx context.Context) error {
	m.DisconnectCalls++
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx)
	}
	return nil
}

func (m *WalletProviderMock) Name() string {
	if m.NameValue != "" {
		return m.NameValue
	}
	return "mock"
}
