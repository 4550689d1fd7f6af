package risk

import (
	"strconv"
	"strings"

	"github.com/rustyeddy/tradedesk/numeric"
	"github.com/shopspring/decimal"
)

// AccountSize is the funded size of a prop account. Zero means the
// account is disabled and no drawdown buffer applies.
type AccountSize int

const (
	SizeDisabled AccountSize = 0
	Size5K       AccountSize = 5000
	Size10K      AccountSize = 10000
	Size20K      AccountSize = 20000
	Size60K      AccountSize = 60000
	Size100K     AccountSize = 100000
)

// AccountSizes lists every accepted size in selector order.
var AccountSizes = []AccountSize{SizeDisabled, Size5K, Size10K, Size20K, Size60K, Size100K}

// Valid reports whether s is one of AccountSizes.
func (s AccountSize) Valid() bool {
	for _, v := range AccountSizes {
		if s == v {
			return true
		}
	}
	return false
}

func (s AccountSize) String() string {
	if s == SizeDisabled {
		return "Disabled"
	}
	return "$" + groupThousands(int(s))
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CalculationMode selects which figure the user enters and which one is
// derived.
type CalculationMode string

const (
	// ModeRiskAmount derives the risk amount from a risk percentage.
	ModeRiskAmount CalculationMode = "riskAmount"
	// ModeRiskPercentage derives the risk percentage from a target amount.
	ModeRiskPercentage CalculationMode = "riskPercentage"
)

// ParseCalculationMode accepts the JSON names plus the short forms
// "amount" and "percentage".
func ParseCalculationMode(s string) (CalculationMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "riskamount", "amount":
		return ModeRiskAmount, true
	case "riskpercentage", "percentage", "percent":
		return ModeRiskPercentage, true
	}
	return "", false
}

// Risk percentage domain offered by the selector.
const (
	MinRiskPercentage = 1
	MaxRiskPercentage = 20
)

// Account is one trading account as the user configured it. Balance,
// RiskPercentage and TargetRiskAmount keep the raw text the user typed;
// ActualBalance, RiskAmount and RemainingTrades are derived by
// Recalculate and never set directly.
type Account struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	AccountSize      AccountSize     `json:"accountSize"`
	Balance          string          `json:"balance"`
	RiskPercentage   string          `json:"riskPercentage"`
	RoundTo          int             `json:"roundTo"`
	CalculationMode  CalculationMode `json:"calculationMode"`
	TargetRiskAmount string          `json:"targetRiskAmount"`
	Note             string          `json:"note"`

	ActualBalance   float64 `json:"actualBalance"`
	RiskAmount      float64 `json:"riskAmount"`
	RemainingTrades int     `json:"remainingTrades"`
}

// Defaults used by NewAccount.
type Defaults struct {
	RiskPercentage string
	RoundTo        int
}

// DefaultDefaults matches a freshly installed journal: 1% risk rounded to 5.
var DefaultDefaults = Defaults{RiskPercentage: "1", RoundTo: 5}

// NewAccount returns a disabled account with the given defaults applied.
func NewAccount(id string, d Defaults) Account {
	return Recalculate(Account{
		ID:              id,
		AccountSize:     SizeDisabled,
		RiskPercentage:  d.RiskPercentage,
		RoundTo:         d.RoundTo,
		CalculationMode: ModeRiskAmount,
	})
}

// Recalculate re-derives every computed field from the stored raw inputs
// using the path selected by CalculationMode.
func Recalculate(a Account) Account {
	a.ActualBalance = ActualBalance(a.Balance, a.AccountSize)

	var amount decimal.Decimal
	switch a.CalculationMode {
	case ModeRiskPercentage:
		if !numeric.IsBlank(a.TargetRiskAmount) {
			pct := RiskPercentageFromTarget(a.Balance, a.TargetRiskAmount, a.AccountSize)
			a.RiskPercentage = numeric.Format(numeric.RoundPlaces(pct, 2))
		}
		amount = numeric.Decimal(a.TargetRiskAmount)
	default:
		amount = riskAmount(a.Balance, a.RiskPercentage, a.RoundTo, a.AccountSize)
	}

	a.RiskAmount = numeric.FromDecimal(amount)
	a.RemainingTrades = remainingTrades(actualBalance(a.Balance, a.AccountSize), amount)
	return a
}

// Mode returns the effective calculation mode; an unset mode from an
// older snapshot means ModeRiskAmount.
func (a Account) Mode() CalculationMode {
	if a.CalculationMode == ModeRiskPercentage {
		return ModeRiskPercentage
	}
	return ModeRiskAmount
}
