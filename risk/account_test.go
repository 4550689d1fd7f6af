package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func funded(t *testing.T) Account {
	t.Helper()

	a := NewAccount("A1", DefaultDefaults)
	a = Apply(a, FieldAccountSize, "10000")
	a = Apply(a, FieldBalance, "9500")
	return a
}

func TestNewAccount(t *testing.T) {
	t.Parallel()

	a := NewAccount("A1", DefaultDefaults)

	assert.Equal(t, "A1", a.ID)
	assert.Equal(t, SizeDisabled, a.AccountSize)
	assert.Equal(t, "", a.Balance)
	assert.Equal(t, "1", a.RiskPercentage)
	assert.Equal(t, 5, a.RoundTo)
	assert.Equal(t, ModeRiskAmount, a.CalculationMode)
	assert.Zero(t, a.ActualBalance)
	assert.Zero(t, a.RiskAmount)
	assert.Zero(t, a.RemainingTrades)
}

func TestApplyRecalculates(t *testing.T) {
	t.Parallel()

	a := funded(t)
	assert.Equal(t, 500.0, a.ActualBalance)
	assert.Equal(t, 5.0, a.RiskAmount)
	assert.Equal(t, 100, a.RemainingTrades)

	a = Apply(a, FieldRiskPercentage, "10")
	assert.Equal(t, 50.0, a.RiskAmount)
	assert.Equal(t, 10, a.RemainingTrades)

	a = Apply(a, FieldRoundTo, "0")
	a = Apply(a, FieldRiskPercentage, "3.3")
	assert.InDelta(t, 16.5, a.RiskAmount, 1e-9)
	assert.Equal(t, 30, a.RemainingTrades)
}

func TestApplyRejectsUnknownAccountSize(t *testing.T) {
	t.Parallel()

	a := funded(t)
	for _, v := range []string{"7000", "5000.5", "-5000"} {
		got := Apply(a, FieldAccountSize, v)
		assert.Equal(t, a, got, "value %q", v)
	}
}

func TestApplyRoundToClampsNegative(t *testing.T) {
	t.Parallel()

	a := Apply(funded(t), FieldRoundTo, "-3")
	assert.Equal(t, 0, a.RoundTo)
}

func TestApplyUnknownFieldIsNoop(t *testing.T) {
	t.Parallel()

	a := funded(t)
	assert.Equal(t, a, Apply(a, Field("riskAmount"), "999"))
}

func TestApplyKeepsOutOfRangePercentage(t *testing.T) {
	t.Parallel()

	a := Apply(funded(t), FieldRiskPercentage, "35")
	assert.Equal(t, "35", a.RiskPercentage)
	assert.Equal(t, 175.0, a.RiskAmount)
}

func TestPercentageModeDerivesFromTarget(t *testing.T) {
	t.Parallel()

	a := funded(t)
	a = Apply(a, FieldTargetRiskAmount, "25")
	// target is ignored until the mode changes
	assert.Equal(t, 5.0, a.RiskAmount)

	a = Apply(a, FieldCalculationMode, string(ModeRiskPercentage))
	assert.Equal(t, "5", a.RiskPercentage)
	assert.Equal(t, 25.0, a.RiskAmount)
	assert.Equal(t, 20, a.RemainingTrades)
}

func TestPercentageModeRoundsToTwoPlaces(t *testing.T) {
	t.Parallel()

	a := NewAccount("A1", DefaultDefaults)
	a = Apply(a, FieldCalculationMode, "percentage")
	a = Apply(a, FieldAccountSize, "10000")
	a = Apply(a, FieldBalance, "9300")
	a = Apply(a, FieldTargetRiskAmount, "10")

	assert.Equal(t, "3.33", a.RiskPercentage)
	assert.Equal(t, 10.0, a.RiskAmount)
	assert.Equal(t, 30, a.RemainingTrades)
}

func TestPercentageModeKeepsPercentageWithoutTarget(t *testing.T) {
	t.Parallel()

	a := Apply(funded(t), FieldRiskPercentage, "4")
	a = Apply(a, FieldCalculationMode, "riskPercentage")

	assert.Equal(t, "4", a.RiskPercentage)
	assert.Zero(t, a.RiskAmount)
	assert.Zero(t, a.RemainingTrades)
}

func TestModeSwitchRederivesFromStoredInputs(t *testing.T) {
	t.Parallel()

	a := funded(t)
	a = Apply(a, FieldRoundTo, "0")
	a = Apply(a, FieldTargetRiskAmount, "40")
	a = Apply(a, FieldCalculationMode, "riskPercentage")
	require.Equal(t, "8", a.RiskPercentage)

	a = Apply(a, FieldCalculationMode, "riskAmount")
	assert.Equal(t, ModeRiskAmount, a.CalculationMode)
	assert.Equal(t, 40.0, a.RiskAmount)
	assert.Equal(t, 12, a.RemainingTrades)

	// the raw balance drives the next derivation, not the stale figures
	a = Apply(a, FieldBalance, "9750")
	assert.Equal(t, 60.0, a.RiskAmount)
	assert.Equal(t, 12, a.RemainingTrades)
}

func TestRecalculateOldSnapshotWithoutMode(t *testing.T) {
	t.Parallel()

	a := Account{ID: "old", AccountSize: Size10K, Balance: "9500", RiskPercentage: "10", RoundTo: 5}
	a = Recalculate(a)

	assert.Equal(t, ModeRiskAmount, a.Mode())
	assert.Equal(t, 50.0, a.RiskAmount)
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, ok := ParseField("Balance")
	assert.True(t, ok)
	assert.Equal(t, FieldBalance, f)

	f, ok = ParseField("targetriskamount")
	assert.True(t, ok)
	assert.Equal(t, FieldTargetRiskAmount, f)

	_, ok = ParseField("actualBalance")
	assert.False(t, ok)
}

func TestAccountSizeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Disabled", SizeDisabled.String())
	assert.Equal(t, "$5,000", Size5K.String())
	assert.Equal(t, "$100,000", Size100K.String())
}

func TestApplyOutOfRangeNumbersCoerceToZero(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"1e400", "-1e400", "NaN"} {
		v := v
		t.Run(v, func(t *testing.T) {
			t.Parallel()

			a := Apply(NewAccount("A1", DefaultDefaults), FieldBalance, v)
			assert.Zero(t, a.ActualBalance)
			assert.Zero(t, a.RiskAmount)
			assert.Zero(t, a.RemainingTrades)

			p := funded(t)
			p = Apply(p, FieldCalculationMode, string(ModeRiskPercentage))
			p = Apply(p, FieldTargetRiskAmount, v)
			assert.Zero(t, p.RiskAmount)
			assert.Zero(t, p.RemainingTrades)
			assert.Equal(t, "0", p.RiskPercentage)
		})
	}
}

func TestRecalculateHugeBalance(t *testing.T) {
	t.Parallel()

	a := NewAccount("A1", Defaults{RiskPercentage: "1", RoundTo: 0})
	a = Apply(a, FieldBalance, "1e300")
	assert.InDelta(t, 1e298, a.RiskAmount, 1e284)
	assert.Equal(t, 100, a.RemainingTrades)

	a = Apply(a, FieldRiskPercentage, "1e-500")
	assert.Zero(t, a.RiskAmount)
	assert.Zero(t, a.RemainingTrades)
}
