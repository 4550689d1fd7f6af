package risk

// Prop-firm style accounts may lose at most 10% of their starting size.
// "Actual balance" is what is left of that drawdown buffer and is the base
// for all position sizing.
//
// Every function here is pure and total: blank or malformed text inputs
// coerce to zero through numeric.Decimal.

import (
	"math"

	"github.com/rustyeddy/tradedesk/numeric"
	"github.com/shopspring/decimal"
)

var (
	maxDrawdownPct = decimal.RequireFromString("0.10")
	hundred        = decimal.NewFromInt(100)
	maxTrades      = decimal.NewFromInt(int64(math.MaxInt))
)

// MaxDrawdown is the loss buffer an account of the given size may use.
func MaxDrawdown(size AccountSize) float64 {
	return numeric.FromDecimal(maxDrawdown(size))
}

func maxDrawdown(size AccountSize) decimal.Decimal {
	return decimal.NewFromInt(int64(size)).Mul(maxDrawdownPct)
}

func actualBalance(balance string, size AccountSize) decimal.Decimal {
	bal := numeric.Decimal(balance)
	if size == SizeDisabled || numeric.IsBlank(balance) {
		return bal
	}
	difference := decimal.NewFromInt(int64(size)).Sub(bal)
	return maxDrawdown(size).Sub(difference)
}

// ActualBalance returns the drawdown-adjusted balance. A disabled account
// (size 0) or a blank balance returns the parsed balance itself. Otherwise
// a balance of 90% of size yields 0.
func ActualBalance(balance string, size AccountSize) float64 {
	return numeric.FromDecimal(actualBalance(balance, size))
}

// RiskAmount sizes the risk per trade as riskPercentage of the actual
// balance, rounded to the nearest multiple of roundTo when roundTo > 0.
func RiskAmount(balance, riskPercentage string, roundTo int, size AccountSize) float64 {
	return numeric.FromDecimal(riskAmount(balance, riskPercentage, roundTo, size))
}

func riskAmount(balance, riskPercentage string, roundTo int, size AccountSize) decimal.Decimal {
	if numeric.IsBlank(balance) || numeric.IsBlank(riskPercentage) {
		return decimal.Zero
	}
	ab := actualBalance(balance, size)
	if !ab.IsPositive() {
		return decimal.Zero
	}

	risk := ab.Mul(numeric.Decimal(riskPercentage).Div(hundred))
	if roundTo <= 0 {
		return risk
	}
	return numeric.RoundToDecimal(risk, decimal.NewFromInt(int64(roundTo)))
}

// RiskPercentageFromTarget is the inverse sizing: the percentage of the
// actual balance that targetRiskAmount represents.
func RiskPercentageFromTarget(balance, targetRiskAmount string, size AccountSize) float64 {
	if numeric.IsBlank(balance) || numeric.IsBlank(targetRiskAmount) {
		return 0
	}
	ab := actualBalance(balance, size)
	if !ab.IsPositive() {
		return 0
	}
	return numeric.FromDecimal(numeric.Decimal(targetRiskAmount).Div(ab).Mul(hundred))
}

// RemainingTrades is how many full losses of riskAmount the actual balance
// can absorb. Never negative; saturates at math.MaxInt.
func RemainingTrades(balance string, riskAmount float64, size AccountSize) int {
	return remainingTrades(actualBalance(balance, size), numeric.FromFloat(riskAmount))
}

func remainingTrades(ab, risk decimal.Decimal) int {
	if !risk.IsPositive() {
		return 0
	}
	n := ab.Div(risk).Floor()
	switch {
	case n.IsNegative():
		return 0
	case n.GreaterThan(maxTrades):
		return math.MaxInt
	}
	return int(n.IntPart())
}
