package journal

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/rustyeddy/tradedesk/pair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHistoryCSV(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := pair.CommitName(pair.New("P1", t0, pair.DefaultUnnamedTTL), "EURUSD")
	p = pair.SetBias(p, pair.Daily, pair.Bullish, t0.Add(time.Hour))
	p = pair.SetBias(p, pair.Weekly, pair.Bullish, t0.Add(2*time.Hour))
	p = pair.SetBias(p, pair.Daily, pair.Bearish, t0.Add(3*time.Hour))
	empty := pair.New("P2", t0, pair.DefaultUnnamedTTL)

	var buf bytes.Buffer
	require.NoError(t, WriteHistoryCSV(&buf, []pair.Pair{p, empty}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"pair_id", "pair", "date", "daily_bias", "weekly_bias"}, rows[0])
	assert.Equal(t, []string{"P1", "EURUSD", "2024-01-02T05:04:05Z", "bullish", "bullish"}, rows[1])
	assert.Equal(t, []string{"P1", "EURUSD", "2024-01-02T03:04:05Z", "bearish", "bearish"}, rows[2])
}
