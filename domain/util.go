package domain

import (
	"strings"
)

// ValidateTokenPair returns nil if the two registry keys are a valid swap pair, otherwise an error.
// This is to be used as a parameter validation for token selection.
// For example, the from token must not equal the to token.
func ValidateTokenPair(fromKey, toKey string) error {
	if strings.TrimSpace(fromKey) == "" || strings.TrimSpace(toKey) == "" {
		return ValidationError{Field: "tokens", Reason: "both tokens must be selected"}
	}

	if fromKey == toKey {
		return ValidationError{Field: "tokens", Reason: "from and to tokens must differ"}
	}

	return nil
}

// ShortAddress formats an address as 0x1234...abcd for display.
func ShortAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
