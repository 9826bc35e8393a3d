package usecase

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

type tokensUseCase struct {
	tokensMu   sync.RWMutex
	tokenByKey map[string]domain.TokenEntry
	// lower case key and symbol to key.
	keyByLowerCaseName map[string]string
	// display order of the built-in keys.
	keys []string

	config domain.TokensConfig

	// randIntN returns a random number in [0, n).
	randIntN func(n int) int
}

var _ mvc.TokensUsecase = &tokensUseCase{}

// DefaultTokenEntries returns the default built-in tokens in display order.
func DefaultTokenEntries() []domain.TokenEntry {
	entries := make([]domain.TokenEntry, 0, len(domain.DefaultTokenKeys))
	for _, key := range domain.DefaultTokenKeys {
		entries = append(entries, domain.TokenEntry{
			Key:   key,
			Token: domain.DefaultTokens[key],
		})
	}
	return entries
}

// NewTokensUsecase will create a new tokens use case object
func NewTokensUsecase(entries []domain.TokenEntry, config domain.TokensConfig) mvc.TokensUsecase {
	tokensUsecase := &tokensUseCase{
		config:   config,
		randIntN: rand.Intn,
	}

	tokensUsecase.LoadTokens(entries)

	return tokensUsecase
}

// GetTokens implements mvc.TokensUsecase.
func (t *tokensUseCase) GetTokens() []domain.TokenEntry {
	t.tokensMu.RLock()
	defer t.tokensMu.RUnlock()

	result := make([]domain.TokenEntry, 0, len(t.keys))
	for _, key := range t.keys {
		result = append(result, t.tokenByKey[key])
	}

	return result
}

// GetToken implements mvc.TokensUsecase.
func (t *tokensUseCase) GetToken(key string) (domain.TokenEntry, error) {
	t.tokensMu.RLock()
	defer t.tokensMu.RUnlock()

	if entry, ok := t.tokenByKey[key]; ok {
		return entry, nil
	}

	if actualKey, ok := t.keyByLowerCaseName[strings.ToLower(key)]; ok {
		return t.tokenByKey[actualKey], nil
	}

	return domain.TokenEntry{}, domain.TokenNotFoundError{Key: key}
}

// LoadTokens implements mvc.TokensUsecase.
// Entries with a duplicate key are skipped; the first one wins.
func (t *tokensUseCase) LoadTokens(entries []domain.TokenEntry) {
	tokenByKey := make(map[string]domain.TokenEntry, len(entries))
	keyByLowerCaseName := make(map[string]string, len(entries)*2)
	keys := make([]string, 0, len(entries))

	for _, entry := range entries {
		if _, ok := tokenByKey[entry.Key]; ok {
			continue
		}

		entry.Imported = false
		tokenByKey[entry.Key] = entry
		keys = append(keys, entry.Key)

		keyByLowerCaseName[strings.ToLower(entry.Key)] = entry.Key
		if _, ok := keyByLowerCaseName[strings.ToLower(entry.Token.Symbol)]; !ok {
			keyByLowerCaseName[strings.ToLower(entry.Token.Symbol)] = entry.Key
		}
	}

	t.tokensMu.Lock()
	defer t.tokensMu.Unlock()

	t.tokenByKey = tokenByKey
	t.keyByLowerCaseName = keyByLowerCaseName
	t.keys = keys
}

// NewRegistry implements mvc.TokensUsecase.
// Later reloads of the built-in tokens do not affect registries that were already created.
func (t *tokensUseCase) NewRegistry() mvc.TokenRegistry {
	return newTokenRegistry(t.GetTokens(), t.config, t.randIntN)
}
