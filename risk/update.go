package risk

import (
	"strings"

	"github.com/rustyeddy/tradedesk/numeric"
)

// Field names an editable Account field. Derived fields are not editable.
type Field string

const (
	FieldName             Field = "name"
	FieldAccountSize      Field = "accountSize"
	FieldBalance          Field = "balance"
	FieldRiskPercentage   Field = "riskPercentage"
	FieldRoundTo          Field = "roundTo"
	FieldCalculationMode  Field = "calculationMode"
	FieldTargetRiskAmount Field = "targetRiskAmount"
	FieldNote             Field = "note"
)

// Fields lists every editable field.
var Fields = []Field{
	FieldName,
	FieldAccountSize,
	FieldBalance,
	FieldRiskPercentage,
	FieldRoundTo,
	FieldCalculationMode,
	FieldTargetRiskAmount,
	FieldNote,
}

// ParseField matches s case-insensitively against Fields.
func ParseField(s string) (Field, bool) {
	s = strings.TrimSpace(s)
	for _, f := range Fields {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	return "", false
}

// Apply sets one field from user text and re-derives the computed fields.
// Values that would break an invariant (an unknown account size or mode)
// leave the account unchanged.
func Apply(a Account, f Field, value string) Account {
	switch f {
	case FieldName:
		a.Name = value
	case FieldAccountSize:
		v := numeric.Parse(value)
		size := AccountSize(v)
		if float64(size) != v || !size.Valid() {
			return a
		}
		a.AccountSize = size
	case FieldBalance:
		a.Balance = value
	case FieldRiskPercentage:
		a.RiskPercentage = value
	case FieldRoundTo:
		n := int(numeric.Parse(value))
		if n < 0 {
			n = 0
		}
		a.RoundTo = n
	case FieldCalculationMode:
		mode, ok := ParseCalculationMode(value)
		if !ok {
			return a
		}
		a.CalculationMode = mode
	case FieldTargetRiskAmount:
		a.TargetRiskAmount = value
	case FieldNote:
		a.Note = value
	default:
		return a
	}
	return Recalculate(a)
}
