package cmd

import (
	"testing"

	"github.com/rustyeddy/tradedesk/pair"
	"github.com/rustyeddy/tradedesk/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPairs() []pair.Pair {
	return []pair.Pair{
		{ID: "01HQAAAAAAAAAAAAAAAAAAAAAA", Name: "EURUSD"},
		{ID: "01HQBBBBBBBBBBBBBBBBBBBBBB", Name: "GBPJPY"},
		{ID: "01HRCCCCCCCCCCCCCCCCCCCCCC", Name: ""},
	}
}

func TestResolvePair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ref     string
		wantID  string
		wantErr string
	}{
		{"exact id", "01HQBBBBBBBBBBBBBBBBBBBBBB", "01HQBBBBBBBBBBBBBBBBBBBBBB", ""},
		{"name any case", "eurusd", "01HQAAAAAAAAAAAAAAAAAAAAAA", ""},
		{"unique prefix", "01hr", "01HRCCCCCCCCCCCCCCCCCCCCCC", ""},
		{"ambiguous prefix", "01HQ", "", "matches 2"},
		{"suggestion", "EURUDS", "", `did you mean "EURUSD"?`},
		{"no suggestion", "AUDNZD", "", `no pair "AUDNZD"`},
		{"blank", "  ", "", "reference required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := resolvePair(testPairs(), tt.ref)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.ID)
		})
	}
}

func TestResolveAmbiguousName(t *testing.T) {
	t.Parallel()

	accounts := []risk.Account{
		{ID: "01HQAAAAAAAAAAAAAAAAAAAAAA", Name: "FTMO"},
		{ID: "01HQBBBBBBBBBBBBBBBBBBBBBB", Name: "ftmo"},
	}
	_, err := resolveAccount(accounts, "FTMO")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	a, err := resolveAccount(accounts, "01HQB")
	require.NoError(t, err)
	assert.Equal(t, "ftmo", a.Name)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	s, ok := suggest("gbpjyp", []string{"EURUSD", "GBPJPY", ""})
	assert.True(t, ok)
	assert.Equal(t, "GBPJPY", s)

	_, ok = suggest("XAUUSD", []string{"EURUSD"})
	assert.False(t, ok)
}
