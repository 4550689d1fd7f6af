package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActualBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance string
		size    AccountSize
		want    float64
	}{
		{"disabled returns balance", "500", SizeDisabled, 500},
		{"blank balance", "", Size10K, 0},
		{"inside drawdown", "9500", Size10K, 500},
		{"at floor", "9000", Size10K, 0},
		{"below floor", "8000", Size10K, -1000},
		{"in profit", "10250", Size10K, 1250},
		{"60k account", "58000", Size60K, 4000},
		{"malformed balance", "abc", Size10K, -9000},
		{"malformed disabled", "abc", SizeDisabled, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ActualBalance(tt.balance, tt.size), 1e-9)
		})
	}
}

func TestMaxDrawdown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, MaxDrawdown(SizeDisabled))
	assert.Equal(t, 500.0, MaxDrawdown(Size5K))
	assert.Equal(t, 6000.0, MaxDrawdown(Size60K))
	assert.Equal(t, 10000.0, MaxDrawdown(Size100K))
}

func TestRiskAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance string
		pct     string
		roundTo int
		size    AccountSize
		want    float64
	}{
		{"blank balance", "", "1", 5, Size10K, 0},
		{"blank percentage", "9500", "", 5, Size10K, 0},
		{"already a multiple", "9500", "10", 5, Size10K, 50},
		{"rounds down", "9537", "1", 5, Size10K, 5},
		{"rounds half away from zero", "9750", "1", 5, Size10K, 10},
		{"no rounding", "9537", "1", 0, Size10K, 5.37},
		{"negative round-to disables rounding", "9537", "1", -5, Size10K, 5.37},
		{"drawdown exhausted", "9000", "5", 5, Size10K, 0},
		{"below floor", "8500", "5", 5, Size10K, 0},
		{"disabled account uses balance", "10000", "1", 5, SizeDisabled, 100},
		{"out of range percentage still derives", "9500", "50", 0, Size10K, 250},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RiskAmount(tt.balance, tt.pct, tt.roundTo, tt.size)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRiskAmountUnroundedIsExact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.37, RiskAmount("9537", "1", 0, Size10K))
	assert.Equal(t, 15.0, RiskAmount("9500", "3", 0, Size10K))
}

func TestRiskPercentageFromTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance string
		target  string
		size    AccountSize
		want    float64
	}{
		{"blank balance", "", "25", Size10K, 0},
		{"blank target", "9500", "", Size10K, 0},
		{"simple", "9500", "25", Size10K, 5},
		{"drawdown exhausted", "9000", "25", Size10K, 0},
		{"disabled account", "2000", "20", SizeDisabled, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RiskPercentageFromTarget(tt.balance, tt.target, tt.size)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRemainingTrades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance string
		risk    float64
		size    AccountSize
		want    int
	}{
		{"zero risk", "9500", 0, Size10K, 0},
		{"negative risk", "9500", -10, Size10K, 0},
		{"exact", "9500", 50, Size10K, 10},
		{"floors", "9530", 50, Size10K, 10},
		{"below floor clamps to zero", "8000", 50, Size10K, 0},
		{"disabled account", "1000", 30, SizeDisabled, 33},
		{"quotient beyond int64 saturates", "3e19", 1, SizeDisabled, math.MaxInt},
		{"huge balance tiny risk", "1e30", 0.0001, SizeDisabled, math.MaxInt},
		{"infinite risk", "9500", math.Inf(1), Size10K, 0},
		{"nan risk", "9500", math.NaN(), Size10K, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RemainingTrades(tt.balance, tt.risk, tt.size))
		})
	}
}

func TestRemainingTradesNeverNegative(t *testing.T) {
	t.Parallel()

	balances := []string{"", "0", "-500", "abc", "100", "4500", "8999.99", "9000", "9500", "20000", "1e6",
		"3e19", "-3e19", "1e30", "1e300", "1e400", "-1e400", "NaN"}
	risks := []float64{-100, -0.01, 0, 0.01, 1, 5, 50, 1000, 1e9,
		1e-300, math.MaxFloat64, math.Inf(1), math.Inf(-1), math.NaN()}

	for _, size := range AccountSizes {
		for _, bal := range balances {
			for _, r := range risks {
				got := RemainingTrades(bal, r, size)
				assert.GreaterOrEqual(t, got, 0, "balance=%q risk=%v size=%d", bal, r, size)
			}
		}
	}
}
