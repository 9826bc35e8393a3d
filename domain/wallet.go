package domain

import "context"

// WalletIdentity is the session identity supplied by a wallet provider.
type WalletIdentity struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address"`
	Provider  string `json:"provider"`
	// Simulated is true if the identity was not supplied by a real wallet.
	Simulated bool `json:"simulated"`
	// Balance is the native balance of the account, empty if unknown.
	Balance string `json:"balance,omitempty"`
	// LiquiditySeed is the LP balance a simulated wallet starts with.
	LiquiditySeed string `json:"-"`
}

// WalletProvider is the external wallet collaborator.
// Connect returns ErrWalletUserRejected or ErrWalletProviderAbsent on recoverable failures.
type WalletProvider interface {
	Connect(ctx context.Context) (WalletIdentity, error)
	Disconnect(ctx context.Context) error
	Name() string
}
