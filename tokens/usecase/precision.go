package usecase

import (
	"math/big"

	"github.com/osmosis-labs/osmosis/osmomath"
)

var (
	tenDec = osmomath.NewDec(10)
	// No mutex since we only instantiate this once, and its static content
	precisionScalingFactors []osmomath.Dec
)

func init() {
	// Initialize the precision scaling factors
	precisionScalingFactors = buildPrecisionScalingFactors()
}

// maxDecimals is the largest token precision supported.
// Dec has 18 decimals of precision so larger scaling factors would only lose information.
const maxDecimals = 36

func buildPrecisionScalingFactors() []osmomath.Dec {
	precisionScalingFactors := make([]osmomath.Dec, maxDecimals+1)
	for i := 0; i <= maxDecimals; i++ {
		precisionScalingFactors[i] = tenDec.Power(uint64(i))
	}
	return precisionScalingFactors
}

// GetPrecisionScalingFactor returns 10^decimals.
// Note that the returned decimal is a shared resource and must not be mutated.
func GetPrecisionScalingFactor(decimals int) (osmomath.Dec, bool) {
	if decimals < 0 || decimals >= len(precisionScalingFactors) {
		return osmomath.Dec{}, false
	}
	result := precisionScalingFactors[decimals]
	return result, true
}

// ScaleFromBaseUnits converts an integer amount in base units into a decimal
// amount of a token with the given decimals.
func ScaleFromBaseUnits(amount *big.Int, decimals int) (osmomath.Dec, bool) {
	scalingFactor, ok := GetPrecisionScalingFactor(decimals)
	if !ok {
		return osmomath.Dec{}, false
	}

	return osmomath.NewDecFromBigInt(amount).Quo(scalingFactor), true
}
