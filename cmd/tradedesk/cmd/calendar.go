package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradedesk/calendar"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show this week's trading days",
	Long: `Show Monday to Friday of the current week with the configured trading
days highlighted. On Sunday the upcoming week is shown.`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	days, err := cfg.Calendar.Weekdays()
	if err != nil {
		return err
	}
	fmt.Print(renderWeek(calendar.WeekOf(time.Now(), days)))
	return nil
}

func renderWeek(w calendar.Week) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(w.Title))
	b.WriteString("\n")
	for _, d := range w.Days {
		line := fmt.Sprintf("%-9s %2d", d.Date.Weekday(), d.Date.Day())
		switch {
		case d.Highlighted:
			line = highlightStyle.Render(line + "  trade")
		default:
			line = labelStyle.Render(line)
		}
		if d.IsToday {
			line = todayStyle.Render(line) + "  ← today"
		}
		b.WriteString(line)
		b.WriteString("\n")
		if d.Note != "" {
			b.WriteString("          " + warningStyle.Render(d.Note) + "\n")
		}
	}
	return b.String()
}
