package mocks

import (
	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

// TokensUsecaseMock is a mock implementation of the TokensUsecase interface
type TokensUsecaseMock struct {
	GetTokensFunc   func() []domain.TokenEntry
	GetTokenFunc    func(key string) (domain.TokenEntry, error)
	LoadTokensFunc  func(entries []domain.TokenEntry)
	NewRegistryFunc func() mvc.TokenRegistry
}

var _ mvc.TokensUsecase = &TokensUsecaseMock{}

func (m *TokensUsecaseMock) GetTokens() []domain.TokenEntry {
	if m.GetTokensFunc != nil {
		return m.GetTokensFunc()
	}
	return nil
}

func (m *TokensUsecaseMock) GetToken(key string) (domain.TokenEntry, error) {
	if m.GetTokenFunc != nil {
		return m.GetTokenFunc(key)
	}
	return domain.TokenEntry{}, domain.TokenNotFoundError{Key: key}
}

func (m *TokensUsecaseMock) LoadTokens(entries []domain.TokenEntry) {
	if m.LoadTokensFunc != nil {
		m.LoadTokensFunc(entries)
	}
}

func (m *TokensUsecaseMock) NewRegistry() mvc.TokenRegistry {
	if m.NewRegistryFunc != nil {
		return m.NewRegistryFunc()
	}
	panic("unimplemented")
}
