package mvc

import (
	"github.com/Apalugobang/tempo-dex/domain"
)

// TokensUsecase defines an interface for the built-in tokens usecase.
// Built-in tokens are process-wide and shared by all sessions.
type TokensUsecase interface {
	// GetTokens returns the built-in tokens in display order.
	GetTokens() []domain.TokenEntry

	// GetToken returns the built-in token for the given key.
	// Falls back to a case-insensitive symbol lookup.
	GetToken(key string) (domain.TokenEntry, error)

	// LoadTokens replaces the built-in tokens, preserving the given order.
	LoadTokens(entries []domain.TokenEntry)

	// NewRegistry returns a per-session token registry seeded with the
	// current built-in tokens.
	NewRegistry() TokenRegistry
}

// TokenRegistry is a per-session token registry holding the built-in tokens
// and the tokens imported by the user.
// It is not safe for concurrent use and is expected to be owned by a single session.
type TokenRegistry interface {
	// Register adds a token under its symbol.
	// Returns ValidationError if the address is malformed or the key
	// collides with a built-in token.
	Register(address, symbol string, decimals int, logo string) (domain.TokenEntry, error)

	// Import imports a token by address under a generated symbol.
	Import(address string) (domain.TokenEntry, error)

	// All returns built-in tokens followed by imports in import order.
	All() []domain.TokenEntry

	// Get returns the token for the given key.
	Get(key string) (domain.TokenEntry, bool)
}
