// Package pair tracks the directional bias a trader holds on each
// instrument and whether that bias is still fresh enough to trade on.
//
// Functions here are pure: they take the current time explicitly and
// return a new Pair. Nothing is stored about validity; it is recomputed
// from LastUpdated and ManuallyInvalidated on every read.
package pair

import (
	"slices"
	"strings"
	"time"
)

type Bias string

const (
	Bullish Bias = "bullish"
	Bearish Bias = "bearish"
)

// ParseBias accepts "bullish"/"bearish" in any case, plus "bull"/"bear".
func ParseBias(s string) (Bias, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bullish", "bull":
		return Bullish, true
	case "bearish", "bear":
		return Bearish, true
	}
	return "", false
}

type Timeframe string

const (
	Weekly Timeframe = "weekly"
	Daily  Timeframe = "daily"
)

func ParseTimeframe(s string) (Timeframe, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly", "w":
		return Weekly, true
	case "daily", "d":
		return Daily, true
	}
	return "", false
}

// HistoryCap bounds Pair.History.
const HistoryCap = 7

// DefaultUnnamedTTL is how long a freshly added pair may stay unnamed
// before it is discarded.
const DefaultUnnamedTTL = 30 * time.Second

// HistoryEntry is the bias state a pair held until the daily bias was
// next set.
type HistoryEntry struct {
	Date       time.Time `json:"date"`
	DailyBias  Bias      `json:"dailyBias"`
	WeeklyBias Bias      `json:"weeklyBias"`
}

type Pair struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	WeeklyBias          Bias           `json:"weeklyBias"`
	DailyBias           Bias           `json:"dailyBias"`
	LastUpdated         time.Time      `json:"lastUpdated"`
	History             []HistoryEntry `json:"history"`
	ManuallyInvalidated bool           `json:"manuallyInvalidated"`
	IsEditing           bool           `json:"isEditing"`
	Notes               string         `json:"notes"`

	// DeleteAfter is set only while the pair is Pending.
	DeleteAfter *time.Time `json:"deleteAfter,omitempty"`
}

// New returns an unnamed pair in editing state, bearish on both
// timeframes, due for deletion ttl after now unless it is named first.
func New(id string, now time.Time, ttl time.Duration) Pair {
	p := Pair{
		ID:          id,
		WeeklyBias:  Bearish,
		DailyBias:   Bearish,
		LastUpdated: now,
		History:     []HistoryEntry{},
		IsEditing:   true,
	}
	return Rearm(p, now, ttl)
}

// CommitName stores name and, when it is not blank, leaves editing state.
func CommitName(p Pair, name string) Pair {
	p.Name = name
	if strings.TrimSpace(name) != "" {
		p.IsEditing = false
	}
	return p
}

// StartEditing puts a pair back into editing state for renaming.
func StartEditing(p Pair) Pair {
	p.IsEditing = true
	return p
}

// SetBias records a new bias for tf. A daily change pushes the previous
// state onto History and clears any manual invalidation; a weekly change
// only updates the field. Both refresh LastUpdated.
func SetBias(p Pair, tf Timeframe, b Bias, now time.Time) Pair {
	switch tf {
	case Daily:
		entry := HistoryEntry{
			Date:       p.LastUpdated,
			DailyBias:  p.DailyBias,
			WeeklyBias: p.WeeklyBias,
		}
		p.History = pushHistory(p.History, entry)
		p.DailyBias = b
		p.ManuallyInvalidated = false
	case Weekly:
		p.WeeklyBias = b
	default:
		return p
	}
	p.LastUpdated = now
	return p
}

func pushHistory(h []HistoryEntry, e HistoryEntry) []HistoryEntry {
	n := len(h) + 1
	if n > HistoryCap {
		n = HistoryCap
	}
	out := make([]HistoryEntry, 0, n)
	out = append(out, e)
	out = append(out, h[:n-1]...)
	return out
}

// ToggleInvalidation flips the manual kill switch. LastUpdated and
// History are untouched.
func ToggleInvalidation(p Pair) Pair {
	p.ManuallyInvalidated = !p.ManuallyInvalidated
	return p
}

// IsValid reports whether p was refreshed on now's calendar day, in now's
// location, and has not been switched off by hand. A pair updated at
// 23:59 is stale at 00:01.
func IsValid(p Pair, now time.Time) bool {
	return sameDay(p.LastUpdated.In(now.Location()), now) && !p.ManuallyInvalidated
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

const (
	StatusValid       = "valid"
	StatusDeactivated = "manually deactivated"
	StatusStale       = "needs daily update"
)

// Status explains IsValid for display.
func Status(p Pair, now time.Time) string {
	switch {
	case p.ManuallyInvalidated:
		return StatusDeactivated
	case !IsValid(p, now):
		return StatusStale
	}
	return StatusValid
}

// DisplayName is the name or a placeholder for unnamed pairs.
func DisplayName(p Pair) string {
	if p.Name == "" {
		return "Unnamed Pair"
	}
	return p.Name
}

// Equal reports whether a and b hold the same state. Times compare as
// instants.
func Equal(a, b Pair) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.WeeklyBias == b.WeeklyBias &&
		a.DailyBias == b.DailyBias &&
		a.LastUpdated.Equal(b.LastUpdated) &&
		a.ManuallyInvalidated == b.ManuallyInvalidated &&
		a.IsEditing == b.IsEditing &&
		a.Notes == b.Notes &&
		sameInstant(a.DeleteAfter, b.DeleteAfter) &&
		slices.EqualFunc(a.History, b.History, func(x, y HistoryEntry) bool {
			return x.Date.Equal(y.Date) && x.DailyBias == y.DailyBias && x.WeeklyBias == y.WeeklyBias
		})
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
