package transactionsrepo

import (
	"sync"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

var _ mvc.TransactionRepository = &transactionsRepo{}

// transactionsRepo keeps the transactions in insertion order and serves them newest first.
type transactionsRepo struct {
	mu sync.RWMutex
	// oldest first, so that appends are amortized O(1).
	transactions []domain.Transaction
}

// New creates a new in-memory transaction repository.
func New() mvc.TransactionRepository {
	return &transactionsRepo{}
}

// Append implements mvc.TransactionRepository.
func (r *transactionsRepo) Append(tx domain.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, tx)
}

// GetAll implements mvc.TransactionRepository.
func (r *transactionsRepo) GetAll() []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Transaction, len(r.transactions))
	for i, tx := range r.transactions {
		result[len(r.transactions)-1-i] = tx
	}

	return result
}

// Len implements mvc.TransactionRepository.
func (r *transactionsRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.transactions)
}
