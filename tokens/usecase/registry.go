package usecase

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
)

const (
	importedSymbolPrefix   = "CUSTOM"
	importedSymbolRange    = 1000
	importedTokenDecimals  = 18
	importedTokenLogo      = "🪙"
	maxImportSymbolRetries = 16
)

// tokenRegistry is the per-session token registry.
// Imported tokens never shadow built-in tokens.
type tokenRegistry struct {
	builtins     []domain.TokenEntry
	builtinByKey map[string]domain.TokenEntry

	importedByKey map[string]domain.TokenEntry
	// import order of the imported keys.
	importedKeys []string

	config   domain.TokensConfig
	randIntN func(n int) int
}

var _ mvc.TokenRegistry = &tokenRegistry{}

func newTokenRegistry(builtins []domain.TokenEntry, config domain.TokensConfig, randIntN func(n int) int) *tokenRegistry {
	builtinByKey := make(map[string]domain.TokenEntry, len(builtins))
	for _, entry := range builtins {
		builtinByKey[entry.Key] = entry
	}

	return &tokenRegistry{
		builtins:      builtins,
		builtinByKey:  builtinByKey,
		importedByKey: map[string]domain.TokenEntry{},
		config:        config,
		randIntN:      randIntN,
	}
}

// Register implements mvc.TokenRegistry.
func (r *tokenRegistry) Register(address, symbol string, decimals int, logo string) (domain.TokenEntry, error) {
	if err := r.validateAddress(address); err != nil {
		return domain.TokenEntry{}, err
	}

	if strings.TrimSpace(symbol) == "" {
		return domain.TokenEntry{}, domain.ValidationError{Field: "symbol", Reason: "symbol is required"}
	}

	if decimals < 0 {
		return domain.TokenEntry{}, domain.ValidationError{Field: "decimals", Reason: "decimals must not be negative"}
	}

	if _, ok := r.builtinByKey[symbol]; ok {
		return domain.TokenEntry{}, domain.ValidationError{Field: "symbol", Reason: fmt.Sprintf("symbol (%s) is reserved by a built-in token", symbol)}
	}

	return r.put(address, symbol, decimals, logo), nil
}

// Import implements mvc.TokenRegistry.
// The symbol is CUSTOM followed by a random number in [0, 1000). A symbol
// equal to an earlier import replaces that import.
func (r *tokenRegistry) Import(address string) (domain.TokenEntry, error) {
	if err := r.validateAddress(address); err != nil {
		return domain.TokenEntry{}, err
	}

	symbol, err := r.generateSymbol()
	if err != nil {
		return domain.TokenEntry{}, err
	}

	return r.put(address, symbol, importedTokenDecimals, importedTokenLogo), nil
}

// All implements mvc.TokenRegistry.
func (r *tokenRegistry) All() []domain.TokenEntry {
	result := make([]domain.TokenEntry, 0, len(r.builtins)+len(r.importedKeys))
	result = append(result, r.builtins...)
	for _, key := range r.importedKeys {
		result = append(result, r.importedByKey[key])
	}
	return result
}

// Get implements mvc.TokenRegistry.
func (r *tokenRegistry) Get(key string) (domain.TokenEntry, bool) {
	if entry, ok := r.builtinByKey[key]; ok {
		return entry, true
	}

	if entry, ok := r.importedByKey[key]; ok {
		return entry, true
	}

	for _, entry := range r.All() {
		if strings.EqualFold(entry.Key, key) || strings.EqualFold(entry.Token.Symbol, key) {
			return entry, true
		}
	}

	return domain.TokenEntry{}, false
}

func (r *tokenRegistry) put(address, symbol string, decimals int, logo string) domain.TokenEntry {
	entry := domain.TokenEntry{
		Key: symbol,
		Token: domain.Token{
			Address:  address,
			Symbol:   symbol,
			Decimals: decimals,
			Logo:     logo,
		},
		Imported: true,
	}

	if _, ok := r.importedByKey[entry.Key]; !ok {
		r.importedKeys = append(r.importedKeys, entry.Key)
	}
	r.importedByKey[entry.Key] = entry

	return entry
}

func (r *tokenRegistry) generateSymbol() (string, error) {
	for i := 0; i < maxImportSymbolRetries; i++ {
		symbol := fmt.Sprintf("%s%d", importedSymbolPrefix, r.randIntN(importedSymbolRange))
		if _, ok := r.builtinByKey[symbol]; !ok {
			return symbol, nil
		}
	}
	return "", fmt.Errorf("failed to generate a symbol not reserved by a built-in token after %d attempts", maxImportSymbolRetries)
}

func (r *tokenRegistry) validateAddress(address string) error {
	if !domain.IsTokenAddressFormat(address) {
		return domain.ValidationError{Field: "address", Reason: fmt.Sprintf("address must be %d characters starting with 0x", domain.TokenAddressLength)}
	}

	if r.config.StrictAddressValidation && !common.IsHexAddress(address) {
		return domain.ValidationError{Field: "address", Reason: "address must be hex encoded"}
	}

	if r.config.DedupeByAddress {
		normalized := normalizeAddress(address)
		for _, entry := range r.All() {
			if normalizeAddress(entry.Token.Address) == normalized {
				return domain.ValidationError{Field: "address", Reason: fmt.Sprintf("address is already registered as (%s)", entry.Key)}
			}
		}
	}

	return nil
}

// normalizeAddress returns the checksummed address for hex addresses and
// the lower case address otherwise.
func normalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return strings.ToLower(address)
}
