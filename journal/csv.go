package journal

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/rustyeddy/tradedesk/pair"
)

var historyHeader = []string{"pair_id", "pair", "date", "daily_bias", "weekly_bias"}

// WriteHistoryCSV writes the bias history of every pair, one row per
// entry, most recent first within each pair.
func WriteHistoryCSV(w io.Writer, pairs []pair.Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return err
	}
	for _, p := range pairs {
		for _, h := range p.History {
			err := cw.Write([]string{
				p.ID,
				p.Name,
				h.Date.UTC().Format(time.RFC3339),
				string(h.DailyBias),
				string(h.WeeklyBias),
			})
			if err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
