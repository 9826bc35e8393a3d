package simulated

import (
	"context"

	"github.com/Apalugobang/tempo-dex/domain"
)

const (
	// ProviderName is the name of the simulated wallet provider.
	ProviderName = "simulated"

	// DefaultAddress is the placeholder address of the simulated wallet.
	DefaultAddress = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
)

// Wallet is a wallet provider returning a fixed placeholder identity.
// The returned identity is always marked as simulated.
type Wallet struct {
	address       string
	liquiditySeed string
	reject        bool
}

var _ domain.WalletProvider = &Wallet{}

// Option configures the simulated wallet.
type Option func(*Wallet)

// WithAddress overrides the placeholder address.
func WithAddress(address string) Option {
	return func(w *Wallet) {
		if address != "" {
			w.address = address
		}
	}
}

// WithLiquiditySeed sets the LP balance the wallet starts with.
func WithLiquiditySeed(seed string) Option {
	return func(w *Wallet) {
		w.liquiditySeed = seed
	}
}

// WithRejection makes every connection attempt fail with ErrWalletUserRejected.
func WithRejection() Option {
	return func(w *Wallet) {
		w.reject = true
	}
}

// New returns a simulated wallet provider.
func New(opts ...Option) *Wallet {
	wallet := &Wallet{
		address: DefaultAddress,
	}

	for _, opt := range opts {
		opt(wallet)
	}

	return wallet
}

// Connect implements domain.WalletProvider.
func (w *Wallet) Connect(ctx context.Context) (domain.WalletIdentity, error) {
	if err := ctx.Err(); err != nil {
		return domain.WalletIdentity{}, err
	}

	if w.reject {
		return domain.WalletIdentity{}, domain.ErrWalletUserRejected
	}

	return domain.WalletIdentity{
		Connected:     true,
		Address:       w.address,
		Provider:      ProviderName,
		Simulated:     true,
		LiquiditySeed: w.liquiditySeed,
	}, nil
}

// Disconnect implements domain.WalletProvider.
func (w *Wallet) Disconnect(ctx context.Context) error {
	return nil
}

// Name implements domain.WalletProvider.
func (w *Wallet) Name() string {
	return ProviderName
}
