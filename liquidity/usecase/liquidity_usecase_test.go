package usecase_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/suite"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/liquidity/usecase"
	transactionsrepo "github.com/Apalugobang/tempo-dex/transactions/repository"
)

type LiquidityLedgerTestSuite struct {
	suite.Suite

	transactions mvc.TransactionRepository
	ledger       mvc.LiquidityLedger

	now    time.Time
	nextID int
}

func TestLiquidityLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LiquidityLedgerTestSuite))
}

func (s *LiquidityLedgerTestSuite) SetupTest() {
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.nextID = 0
	s.transactions = transactionsrepo.New()
	s.ledger = s.newLedger(osmomath.ZeroDec())
}

func (s *LiquidityLedgerTestSuite) newLedger(minimumFirstDeposit osmomath.Dec) mvc.LiquidityLedger {
	return usecase.NewLiquidityLedger(s.transactions, minimumFirstDeposit,
		usecase.WithClock(func() time.Time { return s.now }),
		usecase.WithIDGenerator(func() string {
			s.nextID++
			return fmt.Sprintf("tx-%d", s.nextID)
		}),
	)
}

// addLiquidity(50) then addLiquidity(25) from zero.
func (s *LiquidityLedgerTestSuite) TestAdd_TwoDeposits() {
	first, err := s.ledger.Add("50")
	s.Require().NoError(err)
	second, err := s.ledger.Add("25")
	s.Require().NoError(err)

	s.Require().Equal("75.000000", domain.FormatAmount(s.ledger.Balance()))

	all := s.transactions.GetAll()
	s.Require().Len(all, 2)
	s.Require().Equal(second, all[0])
	s.Require().Equal(first, all[1])

	s.Require().Equal(domain.Transaction{
		ID:         "tx-2",
		Type:       domain.AddLiquidityTransaction,
		FromSymbol: domain.LiquidityPositionSymbol,
		ToSymbol:   "",
		Amount:     "25",
		Timestamp:  domain.JustNowLabel,
		Status:     domain.TransactionSuccess,
		CreatedAt:  s.now,
	}, all[0])
}

// removeLiquidity(50) with lpBalance = 30.
func (s *LiquidityLedgerTestSuite) TestRemove_InsufficientBalance() {
	s.ledger.Reset(osmomath.NewDec(30))

	_, err := s.ledger.Remove("50")

	var insufficientErr domain.InsufficientBalanceError
	s.Require().ErrorAs(err, &insufficientErr)
	s.Require().Equal("50.000000", insufficientErr.Requested)
	s.Require().Equal("30.000000", insufficientErr.Available)

	s.Require().Equal("30.000000", domain.FormatAmount(s.ledger.Balance()))
	s.Require().Zero(s.transactions.Len())
}

func (s *LiquidityLedgerTestSuite) TestRemove_EntireBalance() {
	_, err := s.ledger.Add("10.5")
	s.Require().NoError(err)

	tx, err := s.ledger.Remove("10.5")
	s.Require().NoError(err)
	s.Require().Equal(domain.RemoveLiquidityTransaction, tx.Type)
	s.Require().True(s.ledger.Balance().IsZero())

	all := s.transactions.GetAll()
	s.Require().Len(all, 2)
	s.Require().Equal(domain.RemoveLiquidityTransaction, all[0].Type)
}

func (s *LiquidityLedgerTestSuite) TestInvalidAmounts_NoMutation() {
	s.ledger.Reset(osmomath.NewDec(5))

	for _, amount := range []string{"", "  ", "abc", "0", "-1"} {
		_, err := s.ledger.Add(amount)
		s.Require().ErrorAs(err, &domain.ValidationError{}, "add %q", amount)

		_, err = s.ledger.Remove(amount)
		s.Require().ErrorAs(err, &domain.ValidationError{}, "remove %q", amount)
	}

	s.Require().Equal("5.000000", domain.FormatAmount(s.ledger.Balance()))
	s.Require().Zero(s.transactions.Len())
}

func (s *LiquidityLedgerTestSuite) TestAdd_AboveMaximum() {
	_, err := s.ledger.Add("1" + strings.Repeat("0", 72))

	var validationErr domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Require().Equal("amount is too large", validationErr.Reason)
	s.Require().True(s.ledger.Balance().IsZero())
	s.Require().Zero(s.transactions.Len())
}

// Deposits that would push the balance past the bound are rejected atomically.
func (s *LiquidityLedgerTestSuite) TestAdd_BalanceBounded() {
	largest := "1" + strings.Repeat("0", 30)

	_, err := s.ledger.Add(largest)
	s.Require().NoError(err)

	_, err = s.ledger.Add(largest)
	s.Require().ErrorAs(err, &domain.ValidationError{})

	s.Require().Equal(largest+".000000", domain.FormatAmount(s.ledger.Balance()))
	s.Require().Equal(1, s.transactions.Len())
}

// The balance never goes negative over any sequence of operations.
func (s *LiquidityLedgerTestSuite) TestBalanceNeverNegative() {
	operations := []struct {
		add    bool
		amount string
	}{
		{true, "10"}, {false, "3"}, {false, "8"}, {false, "7"}, {true, "0.000001"}, {false, "0.000002"}, {false, "0.000001"},
	}

	for _, op := range operations {
		before := s.ledger.Balance()
		beforeLen := s.transactions.Len()

		var err error
		if op.add {
			_, err = s.ledger.Add(op.amount)
		} else {
			_, err = s.ledger.Remove(op.amount)
		}

		s.Require().False(s.ledger.Balance().IsNegative())

		if err != nil {
			s.Require().True(before.Equal(s.ledger.Balance()))
			s.Require().Equal(beforeLen, s.transactions.Len())
		} else {
			s.Require().Equal(beforeLen+1, s.transactions.Len())
		}
	}

	s.Require().True(s.ledger.Balance().IsZero())
	s.Require().Equal(5, s.transactions.Len())
}

func (s *LiquidityLedgerTestSuite) TestAmountRecordedAsEntered() {
	tx, err := s.ledger.Add(" 1.50 ")
	s.Require().NoError(err)
	s.Require().Equal("1.50", tx.Amount)
}

func (s *LiquidityLedgerTestSuite) TestMinimumFirstDeposit() {
	ledger := s.newLedger(osmomath.NewDec(1))

	_, err := ledger.Add("1")
	var validationErr domain.ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Require().Equal("first deposit must be greater than the minimum of 1.000000", validationErr.Reason)
	s.Require().Zero(s.transactions.Len())

	_, err = ledger.Add("1.5")
	s.Require().NoError(err)

	// Only the first deposit into an empty position is checked.
	_, err = ledger.Add("0.1")
	s.Require().NoError(err)

	_, err = ledger.Remove("1.6")
	s.Require().NoError(err)

	_, err = ledger.Add("0.5")
	s.Require().ErrorAs(err, &domain.ValidationError{})
}

func (s *LiquidityLedgerTestSuite) TestReset() {
	_, err := s.ledger.Add("10")
	s.Require().NoError(err)

	s.ledger.Reset(osmomath.ZeroDec())
	s.Require().True(s.ledger.Balance().IsZero())

	s.ledger.Reset(osmomath.NewDec(-3))
	s.Require().True(s.ledger.Balance().IsZero())

	s.ledger.Reset(osmomath.NewDec(100))
	s.Require().Equal("100.000000", domain.FormatAmount(s.ledger.Balance()))

	// Reset does not record transactions.
	s.Require().Equal(1, s.transactions.Len())
}
