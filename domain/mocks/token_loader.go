package mocks

import (
	"sync"

	"github.com/Apalugobang/tempo-dex/domain"
	tokensusecase "github.com/Apalugobang/tempo-dex/tokens/usecase"
)

// MockTokenLoader is a mock implementation of TokenListLoader.
// Entries are passed to the callback on every successful fetch.
type MockTokenLoader struct {
	mu        sync.Mutex
	callCount int

	Entries []domain.TokenEntry
	Err     error
}

var _ tokensusecase.TokenListLoader = &MockTokenLoader{}

// FetchAndUpdateTokens implements the TokenListLoader interface.
func (m *MockTokenLoader) FetchAndUpdateTokens(loadTokens tokensusecase.LoadTokensFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++
	if m.Err != nil {
		return m.Err
	}

	loadTokens(m.Entries)
	return nil
}

// CallCount returns the number of times FetchAndUpdateTokens was called.
func (m *MockTokenLoader) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.callCount
}
