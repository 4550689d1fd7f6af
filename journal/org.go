package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tradedesk/pair"
	"github.com/rustyeddy/tradedesk/pkg/id"
	"github.com/rustyeddy/tradedesk/risk"
)

// FormatAccountOrg renders an account as an Org-mode block suitable for
// pasting into a journal. Structured facts go in a PROPERTIES drawer;
// violations from risk.Evaluate are listed under Checks.
func FormatAccountOrg(a risk.Account) string {
	d := risk.Evaluate(a)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Account: %s (%s)\n", accountTitle(a), shortID(a.ID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", a.ID))
	writeCreated(&b, a.ID)
	b.WriteString(fmt.Sprintf(":ACCOUNT_SIZE: %s\n", a.AccountSize))
	if a.AccountSize != risk.SizeDisabled {
		b.WriteString(fmt.Sprintf(":MAX_DRAWDOWN: %.2f\n", risk.MaxDrawdown(a.AccountSize)))
	}
	b.WriteString(fmt.Sprintf(":BALANCE: %s\n", a.Balance))
	b.WriteString(fmt.Sprintf(":ACTUAL_BALANCE: %.2f\n", d.ActualBalance))
	b.WriteString(fmt.Sprintf(":MODE: %s\n", a.Mode()))
	b.WriteString(fmt.Sprintf(":RISK_PCT: %s\n", a.RiskPercentage))
	b.WriteString(fmt.Sprintf(":ROUND_TO: %d\n", a.RoundTo))
	b.WriteString(fmt.Sprintf(":RISK_AMOUNT: %.2f\n", d.RiskAmount))
	b.WriteString(fmt.Sprintf(":REMAINING_TRADES: %d\n", d.RemainingTrades))
	b.WriteString(":END:\n")

	if len(d.Violations) > 0 {
		b.WriteString("\n*** Checks\n")
		for _, v := range d.Violations {
			b.WriteString(fmt.Sprintf("- %s: %s\n", v.Code, v.Msg))
		}
	}
	if a.Note != "" {
		b.WriteString("\n*** Note\n")
		b.WriteString(a.Note)
		b.WriteString("\n")
	}
	return b.String()
}

func accountTitle(a risk.Account) string {
	if a.Name != "" {
		return a.Name
	}
	return a.AccountSize.String()
}

// FormatPairOrg renders a pair, its validity at now and its bias history.
func FormatPairOrg(p pair.Pair, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Pair: %s (%s)\n", pair.DisplayName(p), shortID(p.ID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", p.ID))
	writeCreated(&b, p.ID)
	b.WriteString(fmt.Sprintf(":WEEKLY_BIAS: %s\n", p.WeeklyBias))
	b.WriteString(fmt.Sprintf(":DAILY_BIAS: %s\n", p.DailyBias))
	b.WriteString(fmt.Sprintf(":LAST_UPDATED: %s\n", p.LastUpdated.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":STATUS: %s\n", pair.Status(p, now)))
	b.WriteString(":END:\n")

	if len(p.History) > 0 {
		b.WriteString("\n*** History\n")
		b.WriteString("| date | daily | weekly |\n")
		b.WriteString("|------+-------+--------|\n")
		for _, h := range p.History {
			b.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				h.Date.In(now.Location()).Format("2006-01-02"), h.DailyBias, h.WeeklyBias))
		}
	}
	if p.Notes != "" {
		b.WriteString("\n*** Notes\n")
		b.WriteString(p.Notes)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatAccountsOrg renders multiple accounts separated by blank lines.
func FormatAccountsOrg(accounts []risk.Account) string {
	parts := make([]string, 0, len(accounts))
	for _, a := range accounts {
		parts = append(parts, FormatAccountOrg(a))
	}
	return strings.Join(parts, "\n\n")
}

// FormatPairsOrg renders multiple pairs separated by blank lines.
func FormatPairsOrg(pairs []pair.Pair, now time.Time) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, FormatPairOrg(p, now))
	}
	return strings.Join(parts, "\n\n")
}

// writeCreated adds the creation time carried by ULID ids. Ids from older
// journals carry none.
func writeCreated(b *strings.Builder, entityID string) {
	if !id.Is(entityID) {
		return
	}
	b.WriteString(fmt.Sprintf(":CREATED: %s\n", id.Created(entityID).Format(time.RFC3339)))
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
