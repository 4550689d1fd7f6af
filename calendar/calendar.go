package calendar

import (
	"fmt"
	"strings"
	"time"
)

// WednesdayNote is shown on Wednesday when it is today.
const WednesdayNote = "Trade only if no entries on Monday & Tuesday"

var DefaultTradingDays = []time.Weekday{time.Monday, time.Tuesday, time.Thursday}

type Day struct {
	Date        time.Time
	IsToday     bool
	Highlighted bool
	Note        string
}

type Week struct {
	Title string
	Days  []Day
}

// WeekOf returns Monday to Friday of the week containing now. On Sunday the
// upcoming week is returned.
func WeekOf(now time.Time, tradingDays []time.Weekday) Week {
	if tradingDays == nil {
		tradingDays = DefaultTradingDays
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	monday := today.AddDate(0, 0, 1-int(today.Weekday()))

	w := Week{
		Title: fmt.Sprintf("%s %d (Week %d)", monday.Month(), monday.Year(), (d+6)/7),
		Days:  make([]Day, 0, 5),
	}
	for i := 0; i < 5; i++ {
		date := monday.AddDate(0, 0, i)
		day := Day{
			Date:        date,
			IsToday:     date.Equal(today),
			Highlighted: contains(tradingDays, date.Weekday()),
		}
		if day.IsToday && date.Weekday() == time.Wednesday {
			day.Note = WednesdayNote
		}
		w.Days = append(w.Days, day)
	}
	return w
}

// Today returns the day flagged IsToday, if any.
func (w Week) Today() (Day, bool) {
	for _, d := range w.Days {
		if d.IsToday {
			return d, true
		}
	}
	return Day{}, false
}

// ParseWeekday accepts full or three-letter English names, any case.
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			return wd, true
		}
	}
	return 0, false
}

func contains(days []time.Weekday, wd time.Weekday) bool {
	for _, d := range days {
		if d == wd {
			return true
		}
	}
	return false
}
