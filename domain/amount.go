package domain

import (
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// DisplayPrecision is the number of decimal places amounts are formatted with.
const DisplayPrecision = 6

var (
	displayScale   int64 = 1_000_000
	halfDec              = osmomath.NewDecWithPrec(5, 1)
	hundredDec           = osmomath.NewDec(100)
	oneHundredPerc       = osmomath.OneDec()
)

// MaxAmountBitLen bounds the bit length of the 18-decimal representation of
// parsed amounts, about 1.46e30 whole units. Larger amounts are rejected so
// that arithmetic on them cannot overflow.
const MaxAmountBitLen = 160

const (
	reasonAmountRequired  = "amount is required"
	reasonAmountNotNumber = "amount is not a valid number"
	reasonAmountTooLarge  = "amount is too large"
)

// ParseAmount parses a user-entered decimal amount.
// Returns false if the input is empty, not a decimal number or above the
// MaxAmountBitLen bound. The sign is not checked.
func ParseAmount(amountStr string) (osmomath.Dec, bool) {
	amount, reason := parseAmount(amountStr)
	return amount, reason == ""
}

// parseAmount returns the reason the amount is rejected, empty on success.
func parseAmount(amountStr string) (osmomath.Dec, string) {
	trimmed := strings.TrimSpace(amountStr)
	if trimmed == "" {
		return osmomath.Dec{}, reasonAmountRequired
	}

	amount, err := osmomath.NewDecFromStr(trimmed)
	if err != nil {
		return osmomath.Dec{}, reasonAmountNotNumber
	}

	if amount.BigInt().BitLen() > MaxAmountBitLen {
		return osmomath.Dec{}, reasonAmountTooLarge
	}

	return amount, ""
}

// ParsePositiveAmount parses a user-entered amount that must be strictly positive.
// Returns ValidationError for the given field otherwise.
func ParsePositiveAmount(field, amountStr string) (osmomath.Dec, error) {
	amount, reason := parseAmount(amountStr)
	if reason != "" {
		return osmomath.Dec{}, ValidationError{Field: field, Reason: reason}
	}

	if !amount.IsPositive() {
		return osmomath.Dec{}, ValidationError{Field: field, Reason: "amount must be greater than zero"}
	}

	return amount, nil
}

// FormatAmount formats the amount with DisplayPrecision decimals, rounding half up.
func FormatAmount(amount osmomath.Dec) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	scaled := amount.MulInt64(displayScale).Add(halfDec).TruncateInt().String()

	if len(scaled) <= DisplayPrecision {
		scaled = strings.Repeat("0", DisplayPrecision-len(scaled)+1) + scaled
	}

	intPart := scaled[:len(scaled)-DisplayPrecision]
	fracPart := scaled[len(scaled)-DisplayPrecision:]

	result := intPart + "." + fracPart
	if negative && strings.Trim(result, "0.") != "" {
		result = "-" + result
	}
	return result
}

// ParseSlippagePercent parses a slippage percentage such as "0.5" and returns it
// as a fraction (0.005). The percentage must be in [0, 100).
func ParseSlippagePercent(percentStr string) (osmomath.Dec, error) {
	percent, ok := ParseAmount(percentStr)
	if !ok {
		return osmomath.Dec{}, ValidationError{Field: "slippage", Reason: "slippage is not a valid percentage"}
	}

	fraction := percent.Quo(hundredDec)
	if fraction.IsNegative() || fraction.GTE(oneHundredPerc) {
		return osmomath.Dec{}, ValidationError{Field: "slippage", Reason: "slippage must be at least 0% and below 100%"}
	}

	return fraction, nil
}

// FormatPercent formats a fraction as a percentage string, e.g. 0.005 -> "0.5".
func FormatPercent(fraction osmomath.Dec) string {
	formatted := FormatAmount(fraction.Mul(hundredDec))
	formatted = strings.TrimRight(formatted, "0")
	return strings.TrimSuffix(formatted, ".")
}

// PercentEqual returns true if both strings parse to the same percentage.
func PercentEqual(a, b string) bool {
	decA, okA := ParseAmount(a)
	decB, okB := ParseAmount(b)
	return okA && okB && decA.Equal(decB)
}
