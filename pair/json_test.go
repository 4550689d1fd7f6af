package pair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairUnmarshalNumericID(t *testing.T) {
	t.Parallel()

	raw := `{"id":1700000000000,"name":"EURUSD","weeklyBias":"bullish","dailyBias":"bearish","lastUpdated":"2024-03-15T10:00:00Z","history":[]}`
	var p Pair
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "1700000000000", p.ID)
	assert.Equal(t, "EURUSD", p.Name)
	assert.Equal(t, Bullish, p.WeeklyBias)
	assert.True(t, p.LastUpdated.Equal(t0))
	assert.NotNil(t, p.History)
}
