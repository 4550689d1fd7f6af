package risk

import (
	"fmt"

	"github.com/rustyeddy/tradedesk/numeric"
)

type Violation struct {
	Code string
	Msg  string
}

// Decision summarises an account for display. Violations are advisory:
// the engine never rejects input, it only flags figures the trader
// should look at before sizing the next position.
type Decision struct {
	Allowed    bool
	Violations []Violation

	ActualBalance   float64
	RiskAmount      float64
	RiskPercentage  float64
	RemainingTrades int
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Has reports whether a violation with the given code was raised.
func (d Decision) Has(code string) bool {
	for _, v := range d.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

const (
	CodeNoBalance        = "NO_BALANCE"
	CodeRiskOutOfRange   = "RISK_OUT_OF_RANGE"
	CodeDrawdownBreached = "DRAWDOWN_BREACHED"
	CodeNoTradesLeft     = "NO_TRADES_LEFT"
)

// Evaluate recalculates a and reports anything that makes its sizing
// unusable.
func Evaluate(a Account) Decision {
	a = Recalculate(a)
	d := Decision{
		Allowed:         true,
		ActualBalance:   a.ActualBalance,
		RiskAmount:      a.RiskAmount,
		RiskPercentage:  numeric.Parse(a.RiskPercentage),
		RemainingTrades: a.RemainingTrades,
	}

	if numeric.IsBlank(a.Balance) {
		d.add(CodeNoBalance, "balance is not set")
		return d
	}

	if d.RiskPercentage < MinRiskPercentage || d.RiskPercentage > MaxRiskPercentage {
		d.add(CodeRiskOutOfRange,
			fmt.Sprintf("risk %.2f%% outside %d-%d%%",
				d.RiskPercentage, MinRiskPercentage, MaxRiskPercentage))
	}

	if a.AccountSize != SizeDisabled && d.ActualBalance <= 0 {
		d.add(CodeDrawdownBreached,
			fmt.Sprintf("balance %.2f at or below drawdown floor %.2f",
				numeric.Parse(a.Balance), float64(a.AccountSize)-MaxDrawdown(a.AccountSize)))
	}

	if d.RiskAmount > 0 && d.RemainingTrades == 0 {
		d.add(CodeNoTradesLeft,
			fmt.Sprintf("actual balance %.2f cannot cover risk %.2f", d.ActualBalance, d.RiskAmount))
	}

	return d
}
