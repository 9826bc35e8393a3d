package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/log"
	tokensusecase "github.com/Apalugobang/tempo-dex/tokens/usecase"
)

const (
	// ProviderName is the name of the ethereum wallet provider.
	ProviderName = "ethereum"

	nativeDecimals = 18
	dialTimeout    = 15 * time.Second
)

// ChainReader is the subset of the JSON-RPC client used by the wallet.
type ChainReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	Close()
}

// DialFunc connects to the JSON-RPC endpoint.
type DialFunc func(ctx context.Context, endpoint string) (ChainReader, error)

// Dial connects to the endpoint with ethclient.
func Dial(ctx context.Context, endpoint string) (ChainReader, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	return ethclient.DialContext(ctx, endpoint)
}

// Wallet is a wallet provider backed by an account on an EVM JSON-RPC endpoint.
type Wallet struct {
	endpoint string
	address  string
	// zero if any chain is accepted.
	chainID uint64

	dial   DialFunc
	logger log.Logger

	clientMu sync.Mutex
	client   ChainReader
}

var _ domain.WalletProvider = &Wallet{}

// New returns an ethereum wallet provider for the configured endpoint and account.
func New(config domain.WalletConfig, dial DialFunc, logger log.Logger) *Wallet {
	if dial == nil {
		dial = Dial
	}

	return &Wallet{
		endpoint: config.RPCEndpoint,
		address:  config.Address,
		chainID:  config.ChainID,
		dial:     dial,
		logger:   logger,
	}
}

// Connect implements domain.WalletProvider.
// Returns ErrWalletProviderAbsent if the endpoint or account are not configured or the
// endpoint is unreachable, and ErrWalletWrongChain if the chain id does not match.
func (w *Wallet) Connect(ctx context.Context) (domain.WalletIdentity, error) {
	if w.endpoint == "" {
		return domain.WalletIdentity{}, fmt.Errorf("%w: rpc endpoint is not configured", domain.ErrWalletProviderAbsent)
	}

	if !common.IsHexAddress(w.address) {
		return domain.WalletIdentity{}, fmt.Errorf("%w: account address (%s) is not configured or invalid", domain.ErrWalletProviderAbsent, w.address)
	}

	client, err := w.getClient(ctx)
	if err != nil {
		return domain.WalletIdentity{}, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		w.resetClient()
		return domain.WalletIdentity{}, fmt.Errorf("%w: %v", domain.ErrWalletProviderAbsent, err)
	}

	if err := w.checkChainID(chainID); err != nil {
		return domain.WalletIdentity{}, err
	}

	account := common.HexToAddress(w.address)

	identity := domain.WalletIdentity{
		Connected: true,
		Address:   account.Hex(),
		Provider:  ProviderName,
	}

	// The balance is informational only.
	balance, err := client.BalanceAt(ctx, account, nil)
	if err != nil {
		w.logger.Warn("failed to fetch wallet balance", zap.String("address", identity.Address), zap.Error(err))
		return identity, nil
	}

	if balanceDec, ok := tokensusecase.ScaleFromBaseUnits(balance, nativeDecimals); ok {
		identity.Balance = domain.FormatAmount(balanceDec)
	}

	return identity, nil
}

// HealthCheck checks that the endpoint is reachable and serves the configured chain.
// The account is not required.
func (w *Wallet) HealthCheck(ctx context.Context) error {
	if w.endpoint == "" {
		return fmt.Errorf("%w: rpc endpoint is not configured", domain.ErrWalletProviderAbsent)
	}

	client, err := w.getClient(ctx)
	if err != nil {
		return err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		w.resetClient()
		return fmt.Errorf("%w: %v", domain.ErrWalletProviderAbsent, err)
	}

	return w.checkChainID(chainID)
}

func (w *Wallet) checkChainID(chainID *big.Int) error {
	if w.chainID != 0 && (!chainID.IsUint64() || chainID.Uint64() != w.chainID) {
		return fmt.Errorf("%w: expected (%d), was (%s)", domain.ErrWalletWrongChain, w.chainID, chainID)
	}
	return nil
}

// Disconnect implements domain.WalletProvider.
func (w *Wallet) Disconnect(ctx context.Context) error {
	w.resetClient()
	return nil
}

// Name implements domain.WalletProvider.
func (w *Wallet) Name() string {
	return ProviderName
}

func (w *Wallet) getClient(ctx context.Context) (ChainReader, error) {
	w.clientMu.Lock()
	defer w.clientMu.Unlock()

	if w.client != nil {
		return w.client, nil
	}

	client, err := w.dial(ctx, w.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWalletProviderAbsent, err)
	}

	w.client = client

	return client, nil
}

func (w *Wallet) resetClient() {
	w.clientMu.Lock()
	defer w.clientMu.Unlock()

	if w.client != nil {
		w.client.Close()
		w.client = nil
	}
}
