package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/suite"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mocks"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/log"
	quoteusecase "github.com/Apalugobang/tempo-dex/quote/usecase"
	"github.com/Apalugobang/tempo-dex/session/usecase"
	tokensusecase "github.com/Apalugobang/tempo-dex/tokens/usecase"
	"github.com/Apalugobang/tempo-dex/wallet/simulated"
)

var (
	defaultConfig = usecase.Config{
		SlippagePresetsPercent: []string{"0.1", "0.5", "1.0", "5.0"},
		DefaultSlippagePercent: "0.5",
		DefaultDeadlineMinutes: 20,
		ConfirmationTimeout:    time.Minute,
		MinimumFirstDeposit:    osmomath.ZeroDec(),
		MaxSessions:            8,
	}

	startTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

type SessionUseCaseTestSuite struct {
	suite.Suite

	ctx    context.Context
	now    time.Time
	wallet *mocks.WalletProviderMock
}

func TestSessionUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(SessionUseCaseTestSuite))
}

func (s *SessionUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = startTime
	s.wallet = &mocks.WalletProviderMock{
		ConnectFunc: func(ctx context.Context) (domain.WalletIdentity, error) {
			return domain.WalletIdentity{Connected: true, Address: simulated.DefaultAddress, Provider: "mock"}, nil
		},
	}
}

func (s *SessionUseCaseTestSuite) clock() time.Time {
	return s.now
}

// newUsecase creates a session usecase connecting sessions through the mock wallet.
func (s *SessionUseCaseTestSuite) newUsecase(config usecase.Config, fallback usecase.WalletFactory) mvc.SessionUsecase {
	tokens := tokensusecase.NewTokensUsecase(tokensusecase.DefaultTokenEntries(), domain.TokensConfig{})
	quotes := quoteusecase.NewQuoteUsecase(quoteusecase.DefaultFeeRate)

	us, err := usecase.NewSessionUsecase(tokens, quotes, func() domain.WalletProvider { return s.wallet }, fallback, config, &log.NoOpLogger{}, usecase.WithClock(s.clock))
	s.Require().NoError(err)

	s.T().Cleanup(us.Shutdown)

	return us
}

// newConnectedSession creates a session and connects its wallet.
func (s *SessionUseCaseTestSuite) newConnectedSession(us mvc.SessionUsecase) string {
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	snapshot, err = us.Connect(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().True(snapshot.Identity.Connected)

	return snapshot.ID
}

func (s *SessionUseCaseTestSuite) TestCreateSession_Defaults() {
	us := s.newUsecase(defaultConfig, nil)

	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	s.Require().NotEmpty(snapshot.ID)
	s.Require().False(snapshot.Identity.Connected)
	s.Require().Equal("pathUSD", snapshot.FromToken.Key)
	s.Require().Equal("alphaUSD", snapshot.ToToken.Key)
	s.Require().Equal("0.5", snapshot.Settings.SlippagePercent)
	s.Require().Equal(20, snapshot.Settings.DeadlineMinutes)
	s.Require().Equal(domain.SwapIdle, snapshot.SwapState)
	s.Require().Equal("0.000000", snapshot.LPBalance)
	s.Require().Nil(snapshot.Quote)
	s.Require().Empty(snapshot.Transactions)

	got, err := us.GetSession(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().Equal(snapshot.ID, got.ID)
}

func (s *SessionUseCaseTestSuite) TestSessionNotFound() {
	us := s.newUsecase(defaultConfig, nil)

	_, err := us.GetSession(s.ctx, "missing")
	s.Require().ErrorAs(err, &domain.SessionNotFoundError{})

	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(us.DeleteSession(s.ctx, snapshot.ID))

	_, err = us.AddLiquidity(s.ctx, snapshot.ID, "1")
	s.Require().ErrorAs(err, &domain.SessionNotFoundError{})

	err = us.DeleteSession(s.ctx, snapshot.ID)
	s.Require().ErrorAs(err, &domain.SessionNotFoundError{})
}

func (s *SessionUseCaseTestSuite) TestEvictsLeastRecentlyUsedSession() {
	config := defaultConfig
	config.MaxSessions = 1
	us := s.newUsecase(config, nil)

	first, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	second, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.GetSession(s.ctx, first.ID)
	s.Require().ErrorAs(err, &domain.SessionNotFoundError{})

	_, err = us.GetSession(s.ctx, second.ID)
	s.Require().NoError(err)
}

func (s *SessionUseCaseTestSuite) TestSetFromAmount_Quote() {
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	snapshot, err = us.SetFromAmount(s.ctx, snapshot.ID, "100")
	s.Require().NoError(err)

	s.Require().Equal("100", snapshot.FromAmount)
	s.Require().Equal("99.700000", snapshot.ToAmount)
	s.Require().NotNil(snapshot.Quote)
	s.Require().Equal("0.300000", snapshot.Quote.FeeAmount)
	s.Require().Equal("99.201500", snapshot.Quote.MinimumReceived)
	s.Require().Equal("0.5", snapshot.Quote.SlippagePercent)

	// No quote clears the output.
	for _, amount := range []string{"", "abc", "0", "-5"} {
		snapshot, err = us.SetFromAmount(s.ctx, snapshot.ID, amount)
		s.Require().NoError(err)
		s.Require().Empty(snapshot.ToAmount, amount)
		s.Require().Nil(snapshot.Quote, amount)
	}
}

// Oversize amounts never reach the arithmetic and the session keeps serving.
func (s *SessionUseCaseTestSuite) TestOversizeAmount() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	oversize := "1" + strings.Repeat("0", 72)

	snapshot, err := us.SetFromAmount(s.ctx, sessionID, oversize)
	s.Require().NoError(err)
	s.Require().Empty(snapshot.ToAmount)
	s.Require().Nil(snapshot.Quote)

	_, err = us.RequestSwap(s.ctx, sessionID)
	s.Require().ErrorAs(err, &domain.ValidationError{})

	_, err = us.AddLiquidity(s.ctx, sessionID, oversize)
	s.Require().ErrorAs(err, &domain.ValidationError{})

	snapshot, err = us.SetFromAmount(s.ctx, sessionID, "100")
	s.Require().NoError(err)
	s.Require().Equal("99.700000", snapshot.ToAmount)
	s.Require().Empty(snapshot.Transactions)
}

func (s *SessionUseCaseTestSuite) TestSwap_Committed() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	_, err := us.SetFromAmount(s.ctx, sessionID, "100")
	s.Require().NoError(err)

	result, err := us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapAwaitingConfirm, result.Outcome)
	s.Require().NotNil(result.Pending)
	s.Require().Equal("pathUSD", result.Pending.FromSymbol)
	s.Require().Equal("AlphaUSD", result.Pending.ToSymbol)
	s.Require().Equal("100", result.Pending.Amount)
	s.Require().Equal("99.700000", result.Pending.Quote.OutputAmount)
	s.Require().Equal(startTime.Add(time.Minute), result.Pending.ExpiresAt)

	snapshot, err := us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapConfirming, snapshot.SwapState)
	s.Require().Empty(snapshot.Transactions)

	result, err = us.ConfirmSwap(s.ctx, sessionID, result.Pending.ID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapOutcomeCommitted, result.Outcome)
	s.Require().Equal(domain.SwapSuccessMessage, result.Message)
	s.Require().NotNil(result.Transaction)
	s.Require().Equal(domain.SwapTransaction, result.Transaction.Type)
	s.Require().Equal("pathUSD", result.Transaction.FromSymbol)
	s.Require().Equal("AlphaUSD", result.Transaction.ToSymbol)
	s.Require().Equal("100", result.Transaction.Amount)
	s.Require().Equal(domain.TransactionSuccess, result.Transaction.Status)
	s.Require().Equal(domain.JustNowLabel, result.Transaction.Timestamp)

	snapshot, err = us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapIdle, snapshot.SwapState)
	s.Require().Empty(snapshot.FromAmount)
	s.Require().Empty(snapshot.ToAmount)
	s.Require().Nil(snapshot.Pending)
	s.Require().Len(snapshot.Transactions, 1)

	// Nothing left to confirm.
	_, err = us.ConfirmSwap(s.ctx, sessionID, "")
	s.Require().ErrorAs(err, &domain.NoPendingConfirmationError{})
}

func (s *SessionUseCaseTestSuite) TestRequestSwap_NotConnected() {
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.SetFromAmount(s.ctx, snapshot.ID, "50")
	s.Require().NoError(err)

	result, err := us.RequestSwap(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapConnectRequired, result.Outcome)
	s.Require().Nil(result.Pending)
	s.Require().Nil(result.Transaction)
	s.Require().Equal(1, s.wallet.ConnectCalls)

	snapshot, err = us.GetSession(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().True(snapshot.Identity.Connected)
	s.Require().Equal(domain.SwapIdle, snapshot.SwapState)
	s.Require().Empty(snapshot.Transactions)
}

func (s *SessionUseCaseTestSuite) TestRequestSwap_ConnectRejected() {
	s.wallet.ConnectFunc = func(ctx context.Context) (domain.WalletIdentity, error) {
		return domain.WalletIdentity{}, domain.ErrWalletUserRejected
	}
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.RequestSwap(s.ctx, snapshot.ID)
	s.Require().ErrorIs(err, domain.ErrWalletUserRejected)

	snapshot, err = us.GetSession(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().False(snapshot.Identity.Connected)
	s.Require().Empty(snapshot.Transactions)
}

func (s *SessionUseCaseTestSuite) TestRequestSwap_InvalidAmount() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	for _, amount := range []string{"", "0", "-1", "abc"} {
		_, err := us.SetFromAmount(s.ctx, sessionID, amount)
		s.Require().NoError(err)

		_, err = us.RequestSwap(s.ctx, sessionID)
		s.Require().ErrorAs(err, &domain.ValidationError{}, amount)

		snapshot, err := us.GetSession(s.ctx, sessionID)
		s.Require().NoError(err)
		s.Require().Equal(domain.SwapIdle, snapshot.SwapState)
		s.Require().Empty(snapshot.Transactions)
	}
}

func (s *SessionUseCaseTestSuite) TestRejectSwap() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	before, err := us.SetFromAmount(s.ctx, sessionID, "25")
	s.Require().NoError(err)

	result, err := us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)

	result, err = us.RejectSwap(s.ctx, sessionID, result.Pending.ID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapOutcomeRejected, result.Outcome)

	after, err := us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapIdle, after.SwapState)
	s.Require().Nil(after.Pending)
	s.Require().Empty(after.Transactions)
	s.Require().Equal(before.FromAmount, after.FromAmount)
	s.Require().Equal(before.ToAmount, after.ToAmount)
	s.Require().Equal(before.LPBalance, after.LPBalance)

	_, err = us.RejectSwap(s.ctx, sessionID, "")
	s.Require().ErrorAs(err, &domain.NoPendingConfirmationError{})
}

func (s *SessionUseCaseTestSuite) TestConfirmSwap_Expired() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	_, err := us.SetFromAmount(s.ctx, sessionID, "10")
	s.Require().NoError(err)

	result, err := us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)

	s.now = s.now.Add(time.Minute)

	_, err = us.ConfirmSwap(s.ctx, sessionID, result.Pending.ID)
	s.Require().ErrorAs(err, &domain.ConfirmationExpiredError{})

	// Still expired on retry.
	_, err = us.ConfirmSwap(s.ctx, sessionID, result.Pending.ID)
	s.Require().ErrorAs(err, &domain.ConfirmationExpiredError{})

	snapshot, err := us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapIdle, snapshot.SwapState)
	s.Require().Nil(snapshot.Pending)
	s.Require().Empty(snapshot.Transactions)
	s.Require().Equal("10", snapshot.FromAmount)
}

func (s *SessionUseCaseTestSuite) TestConfirmSwap_ExpiredBeforeSnapshot() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	_, err := us.SetFromAmount(s.ctx, sessionID, "10")
	s.Require().NoError(err)

	result, err := us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)

	s.now = s.now.Add(2 * time.Minute)

	snapshot, err := us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Nil(snapshot.Pending)

	_, err = us.ConfirmSwap(s.ctx, sessionID, result.Pending.ID)
	s.Require().ErrorAs(err, &domain.ConfirmationExpiredError{})
}

func (s *SessionUseCaseTestSuite) TestConfirmSwap_NoTimeout() {
	config := defaultConfig
	config.ConfirmationTimeout = 0
	us := s.newUsecase(config, nil)
	sessionID := s.newConnectedSession(us)

	_, err := us.SetFromAmount(s.ctx, sessionID, "10")
	s.Require().NoError(err)

	result, err := us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().True(result.Pending.ExpiresAt.IsZero())

	s.now = s.now.Add(24 * time.Hour)

	result, err = us.ConfirmSwap(s.ctx, sessionID, "")
	s.Require().NoError(err)
	s.Require().Equal(domain.SwapOutcomeCommitted, result.Outcome)
}

func (s *SessionUseCaseTestSuite) TestRequestSwap_ReplacesPending() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	_, err := us.SetFromAmount(s.ctx, sessionID, "10")
	s.Require().NoError(err)

	first, err := us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)

	_, err = us.SetFromAmount(s.ctx, sessionID, "20")
	s.Require().NoError(err)

	second, err := us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().NotEqual(first.Pending.ID, second.Pending.ID)

	_, err = us.ConfirmSwap(s.ctx, sessionID, first.Pending.ID)
	s.Require().ErrorAs(err, &domain.NoPendingConfirmationError{})

	result, err := us.ConfirmSwap(s.ctx, sessionID, second.Pending.ID)
	s.Require().NoError(err)
	s.Require().Equal("20", result.Transaction.Amount)

	transactions, err := us.GetTransactions(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 1)
}

func (s *SessionUseCaseTestSuite) TestSwitchTokens() {
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.SetFromAmount(s.ctx, snapshot.ID, "100")
	s.Require().NoError(err)

	snapshot, err = us.SwitchTokens(s.ctx, snapshot.ID)
	s.Require().NoError(err)

	s.Require().Equal("alphaUSD", snapshot.FromToken.Key)
	s.Require().Equal("pathUSD", snapshot.ToToken.Key)
	s.Require().Equal("99.700000", snapshot.FromAmount)
	s.Require().Equal("99.400900", snapshot.ToAmount)
}

func (s *SessionUseCaseTestSuite) TestSelectTokens() {
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	tests := []struct {
		name    string
		fromKey string
		toKey   string
		wantErr bool
	}{
		{name: "valid pair", fromKey: "betaUSD", toKey: "pathUSD"},
		{name: "same token", fromKey: "betaUSD", toKey: "betaUSD", wantErr: true},
		{name: "empty token", fromKey: "", toKey: "pathUSD", wantErr: true},
		{name: "unknown token", fromKey: "gammaUSD", toKey: "pathUSD", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := us.SelectTokens(s.ctx, snapshot.ID, tt.fromKey, tt.toKey)
			if tt.wantErr {
				s.Require().ErrorAs(err, &domain.ValidationError{})
				return
			}

			s.Require().NoError(err)
			s.Require().Equal(tt.fromKey, got.FromToken.Key)
			s.Require().Equal(tt.toKey, got.ToToken.Key)
		})
	}

	// Failed selections leave the last valid pair.
	snapshot, err = us.GetSession(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().Equal("betaUSD", snapshot.FromToken.Key)
}

func (s *SessionUseCaseTestSuite) TestUpdateSettings() {
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.SetFromAmount(s.ctx, snapshot.ID, "100")
	s.Require().NoError(err)

	preset, custom, deadline := "1.0", "2", 30

	snapshot, err = us.UpdateSettings(s.ctx, snapshot.ID, domain.SettingsUpdate{SlippagePercent: &preset, DeadlineMinutes: &deadline})
	s.Require().NoError(err)
	s.Require().Equal("1.0", snapshot.Settings.SlippagePercent)
	s.Require().Equal(30, snapshot.Settings.DeadlineMinutes)
	s.Require().Equal("1", snapshot.Quote.SlippagePercent)
	s.Require().Equal("98.703000", snapshot.Quote.MinimumReceived)

	// Custom overrides the preset.
	snapshot, err = us.UpdateSettings(s.ctx, snapshot.ID, domain.SettingsUpdate{CustomSlippagePercent: &custom})
	s.Require().NoError(err)
	s.Require().Equal("2", snapshot.Quote.SlippagePercent)
	s.Require().Equal("97.706000", snapshot.Quote.MinimumReceived)

	// Selecting a preset clears the custom value.
	snapshot, err = us.UpdateSettings(s.ctx, snapshot.ID, domain.SettingsUpdate{SlippagePercent: &preset})
	s.Require().NoError(err)
	s.Require().Empty(snapshot.Settings.CustomSlippagePercent)
	s.Require().Equal("1", snapshot.Quote.SlippagePercent)
}

func (s *SessionUseCaseTestSuite) TestUpdateSettings_Invalid() {
	us := s.newUsecase(defaultConfig, nil)
	created, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	notPreset, badCustom, outOfRange, zeroDeadline := "2.5", "abc", "100", 0
	validPreset := "5.0"

	tests := []struct {
		name   string
		update domain.SettingsUpdate
	}{
		{name: "not a preset", update: domain.SettingsUpdate{SlippagePercent: &notPreset}},
		{name: "custom not a number", update: domain.SettingsUpdate{CustomSlippagePercent: &badCustom}},
		{name: "custom out of range", update: domain.SettingsUpdate{CustomSlippagePercent: &outOfRange}},
		{name: "deadline below one minute", update: domain.SettingsUpdate{DeadlineMinutes: &zeroDeadline}},
		{name: "valid preset with invalid deadline", update: domain.SettingsUpdate{SlippagePercent: &validPreset, DeadlineMinutes: &zeroDeadline}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := us.UpdateSettings(s.ctx, created.ID, tt.update)
			s.Require().ErrorAs(err, &domain.ValidationError{})

			snapshot, err := us.GetSession(s.ctx, created.ID)
			s.Require().NoError(err)
			s.Require().Equal(created.Settings, snapshot.Settings)
		})
	}
}

func (s *SessionUseCaseTestSuite) TestLiquidity() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	result, err := us.AddLiquidity(s.ctx, sessionID, "100")
	s.Require().NoError(err)
	s.Require().Equal("100.000000", result.LPBalance)
	s.Require().Equal(domain.LiquidityAddedMessage, result.Message)
	s.Require().Equal(domain.AddLiquidityTransaction, result.Transaction.Type)

	_, err = us.RemoveLiquidity(s.ctx, sessionID, "150")
	s.Require().ErrorAs(err, &domain.InsufficientBalanceError{})

	snapshot, err := us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Equal("100.000000", snapshot.LPBalance)
	// The rejected input stays in the field.
	s.Require().Equal("150", snapshot.LiquidityAmount)
	s.Require().Len(snapshot.Transactions, 1)

	result, err = us.RemoveLiquidity(s.ctx, sessionID, "40")
	s.Require().NoError(err)
	s.Require().Equal("60.000000", result.LPBalance)
	s.Require().Equal(domain.LiquidityRemovedMessage, result.Message)

	snapshot, err = us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Empty(snapshot.LiquidityAmount)
	s.Require().Len(snapshot.Transactions, 2)
	s.Require().Equal(domain.RemoveLiquidityTransaction, snapshot.Transactions[0].Type)
}

func (s *SessionUseCaseTestSuite) TestLiquidity_NotConnected() {
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.AddLiquidity(s.ctx, snapshot.ID, "10")
	s.Require().ErrorAs(err, &domain.NotConnectedError{})

	_, err = us.RemoveLiquidity(s.ctx, snapshot.ID, "10")
	s.Require().ErrorAs(err, &domain.NotConnectedError{})

	snapshot, err = us.GetSession(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().Equal("0.000000", snapshot.LPBalance)
	s.Require().Empty(snapshot.Transactions)
	s.Require().Zero(s.wallet.ConnectCalls)
}

func (s *SessionUseCaseTestSuite) TestDisconnect_ResetsSession() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	_, err := us.AddLiquidity(s.ctx, sessionID, "10")
	s.Require().NoError(err)

	_, err = us.SetFromAmount(s.ctx, sessionID, "5")
	s.Require().NoError(err)

	_, err = us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)

	snapshot, err := us.Disconnect(s.ctx, sessionID)
	s.Require().NoError(err)

	s.Require().False(snapshot.Identity.Connected)
	s.Require().Empty(snapshot.Identity.Address)
	s.Require().Equal("0.000000", snapshot.LPBalance)
	s.Require().Nil(snapshot.Pending)
	s.Require().Equal(domain.SwapIdle, snapshot.SwapState)
	// History survives the disconnect.
	s.Require().Len(snapshot.Transactions, 1)
	s.Require().Equal(1, s.wallet.DisconnectCalls)

	_, err = us.ConfirmSwap(s.ctx, sessionID, "")
	s.Require().ErrorAs(err, &domain.NoPendingConfirmationError{})
}

func (s *SessionUseCaseTestSuite) TestConnect_SimulationFallback() {
	s.wallet.ConnectFunc = nil // absent provider

	fallback := func() domain.WalletProvider {
		return simulated.New(simulated.WithLiquiditySeed("1250.5"))
	}

	us := s.newUsecase(defaultConfig, fallback)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	snapshot, err = us.Connect(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().True(snapshot.Identity.Connected)
	s.Require().True(snapshot.Identity.Simulated)
	s.Require().Equal(simulated.ProviderName, snapshot.Identity.Provider)
	s.Require().Equal(simulated.DefaultAddress, snapshot.Identity.Address)
	s.Require().Equal("1250.500000", snapshot.LPBalance)

	// Connecting again is a no-op.
	_, err = us.Connect(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().Equal(1, s.wallet.ConnectCalls)
}

func (s *SessionUseCaseTestSuite) TestConnect_ProviderAbsent() {
	s.wallet.ConnectFunc = nil

	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.Connect(s.ctx, snapshot.ID)
	s.Require().ErrorIs(err, domain.ErrWalletProviderAbsent)

	snapshot, err = us.GetSession(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().False(snapshot.Identity.Connected)
}

func (s *SessionUseCaseTestSuite) TestImportToken() {
	us := s.newUsecase(defaultConfig, nil)
	snapshot, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	_, err = us.ImportToken(s.ctx, snapshot.ID, "0xABC")
	s.Require().ErrorAs(err, &domain.ValidationError{})

	tokens, err := us.GetTokens(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().Len(tokens, 3)

	entry, err := us.ImportToken(s.ctx, snapshot.ID, "0x1234567890abcdef1234567890abcdef12345678")
	s.Require().NoError(err)
	s.Require().True(entry.Imported)
	s.Require().Equal(18, entry.Token.Decimals)

	tokens, err = us.GetTokens(s.ctx, snapshot.ID)
	s.Require().NoError(err)
	s.Require().Len(tokens, 4)
	s.Require().Equal(entry.Key, tokens[3].Key)

	// Imports are per session.
	other, err := us.CreateSession(s.ctx)
	s.Require().NoError(err)

	tokens, err = us.GetTokens(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Require().Len(tokens, 3)

	// The imported token can be selected.
	snapshot, err = us.SelectTokens(s.ctx, snapshot.ID, "pathUSD", entry.Key)
	s.Require().NoError(err)
	s.Require().Equal(entry.Key, snapshot.ToToken.Key)
}

func (s *SessionUseCaseTestSuite) TestGetTransactions_NewestFirst() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	_, err := us.AddLiquidity(s.ctx, sessionID, "10")
	s.Require().NoError(err)

	s.now = s.now.Add(5 * time.Minute)

	_, err = us.SetFromAmount(s.ctx, sessionID, "3")
	s.Require().NoError(err)

	_, err = us.RequestSwap(s.ctx, sessionID)
	s.Require().NoError(err)

	_, err = us.ConfirmSwap(s.ctx, sessionID, "")
	s.Require().NoError(err)

	transactions, err := us.GetTransactions(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Len(transactions, 2)

	s.Require().Equal(domain.SwapTransaction, transactions[0].Type)
	s.Require().Equal(domain.JustNowLabel, transactions[0].Timestamp)

	s.Require().Equal(domain.AddLiquidityTransaction, transactions[1].Type)
	s.Require().Equal("5 min ago", transactions[1].Timestamp)
}

func (s *SessionUseCaseTestSuite) TestConcurrentActions() {
	us := s.newUsecase(defaultConfig, nil)
	sessionID := s.newConnectedSession(us)

	const numActions = 50

	var wg sync.WaitGroup
	for i := 0; i < numActions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := us.AddLiquidity(s.ctx, sessionID, "1")
			s.NoError(err)
		}()
	}
	wg.Wait()

	snapshot, err := us.GetSession(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Equal("50.000000", snapshot.LPBalance)
	s.Require().Len(snapshot.Transactions, numActions)
}
