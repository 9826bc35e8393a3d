package mvc

import (
	"github.com/Apalugobang/tempo-dex/domain"
)

// TransactionRepository is the append-only transaction ledger of a session.
type TransactionRepository interface {
	// Append adds the transaction at the head of the ledger.
	Append(tx domain.Transaction)

	// GetAll returns a copy of all transactions, newest first.
	GetAll() []domain.Transaction

	// Len returns the number of transactions.
	Len() int
}
