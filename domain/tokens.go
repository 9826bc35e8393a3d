package domain

import (
	"strings"
)

const (
	// TokenAddressLength is the length of a 0x-prefixed 20-byte hex address.
	TokenAddressLength = 42

	tokenAddressPrefix = "0x"
)

// Token represents the token's domain model
type Token struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
	// Decimals is the precision of the token.
	Decimals int    `json:"decimals"`
	Logo     string `json:"logo"`
}

// TokenEntry is a registry key together with its token.
type TokenEntry struct {
	Key   string `json:"key"`
	Token Token  `json:"token"`
	// Imported is true for tokens imported by the user.
	Imported bool `json:"imported"`
}

// IsTokenAddressFormat returns true if the address is 42 characters long and starts with "0x".
// Hex digits are not checked.
func IsTokenAddressFormat(address string) bool {
	return len(address) == TokenAddressLength && strings.HasPrefix(address, tokenAddressPrefix)
}

// DefaultTokens are the built-in tokens keyed by registry key.
// The order is preserved by DefaultTokenKeys.
var DefaultTokens = map[string]Token{
	"pathUSD": {
		Address:  "0x20c0000000000000000000000000000000000000",
		Symbol:   "pathUSD",
		Decimals: 6,
		Logo:     "💵",
	},
	"alphaUSD": {
		Address:  "0x20c0000000000000000000000000000000000001",
		Symbol:   "AlphaUSD",
		Decimals: 6,
		Logo:     "🅰️",
	},
	"betaUSD": {
		Address:  "0x20c0000000000000000000000000000000000002",
		Symbol:   "BetaUSD",
		Decimals: 6,
		Logo:     "🅱️",
	},
}

// DefaultTokenKeys is the display order of DefaultTokens.
var DefaultTokenKeys = []string{"pathUSD", "alphaUSD", "betaUSD"}

// DefaultFromTokenKey and DefaultToTokenKey are the initial swap pair of a session.
const (
	DefaultFromTokenKey = "pathUSD"
	DefaultToTokenKey   = "alphaUSD"
)
