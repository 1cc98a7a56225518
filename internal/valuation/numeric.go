package valuation

import "math"

// eps is the substitution floor for operands that would otherwise produce a
// division by zero or a logarithm of a non-positive number. The substitution
// is part of the model contract: every calculation yields a finite number.
const eps = 1e-9

// round2 .. round6 apply the cosmetic rounding used on output fields:
// 2 decimals for currency-like amounts, 4-6 for ratios and rates.
func round2(x float64) float64 { return roundTo(x, 2) }
func round4(x float64) float64 { return roundTo(x, 4) }
func round6(x float64) float64 { return roundTo(x, 6) }

func roundTo(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}

// safeLogRatio floors both operands at eps before taking log(num/den).
func safeLogRatio(num, den float64) float64 {
	if num <= eps {
		num = eps
	}
	if den <= eps {
		den = eps
	}
	return math.Log(num / den)
}

// logChange returns log(curr/prev), or 0 when either operand is non-positive.
// Used for market change indices where a missing or degenerate reference
// price means "no observed change".
func logChange(curr, prev float64) float64 {
	if curr > 0 && prev > 0 {
		return math.Log(curr / prev)
	}
	return 0.0
}

// nonZero substitutes a signed eps for a near-zero divisor.
func nonZero(v float64) float64 {
	if math.Abs(v) > eps {
		return v
	}
	if math.Signbit(v) {
		return -eps
	}
	return eps
}
