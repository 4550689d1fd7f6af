package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/pair"
	"github.com/spf13/cobra"
)

var pairCmd = &cobra.Command{
	Use:     "pair",
	Aliases: []string{"pairs"},
	Short:   "Track weekly and daily bias per currency pair",
	Long: `Track the weekly and daily bias of each pair you trade.

A pair is valid when its daily bias was set today and it has not been
deactivated by hand. Every daily bias change records the previous
biases in the pair's history.

A pair added without a name is removed if it is still unnamed when its
deadline passes (pairs.unnamed_ttl, 30s by default).

Pairs are referenced by name, id or id prefix.

Examples:
  tradedesk pair add EURUSD
  tradedesk pair bias EURUSD weekly bullish
  tradedesk pair bias EURUSD daily bearish
  tradedesk pair history EURUSD --csv`,
}

var pairListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pairs with their current status",
	Args:  cobra.NoArgs,
	RunE:  withSession(runPairList),
}

var pairAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a pair",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withSession(runPairAdd),
}

var pairRenameCmd = &cobra.Command{
	Use:   "rename <pair> <name>",
	Short: "Name or rename a pair",
	Args:  cobra.ExactArgs(2),
	RunE:  withSession(runPairRename),
}

var pairEditCmd = &cobra.Command{
	Use:   "edit <pair>",
	Short: "Put a pair back into editing",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(runPairEdit),
}

var pairBiasCmd = &cobra.Command{
	Use:   "bias <pair> <daily|weekly> <bullish|bearish>",
	Short: "Set the daily or weekly bias",
	Args:  cobra.ExactArgs(3),
	RunE:  withSession(runPairBias),
}

var pairToggleCmd = &cobra.Command{
	Use:   "toggle <pair>",
	Short: "Deactivate or reactivate a pair by hand",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(runPairToggle),
}

var pairNoteCmd = &cobra.Command{
	Use:   "note <pair> <text>",
	Short: "Replace the notes of a pair",
	Args:  cobra.MinimumNArgs(1),
	RunE:  withSession(runPairNote),
}

var pairHistoryCmd = &cobra.Command{
	Use:   "history <pair>",
	Short: "Show the bias history of a pair",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(runPairHistory),
}

var pairRmCmd = &cobra.Command{
	Use:   "rm <pair>",
	Short: "Delete a pair",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(runPairRm),
}

var pairExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all pairs as Org-mode or history CSV",
	Args:  cobra.NoArgs,
	RunE:  withSession(runPairExport),
}

var (
	pairHistoryCSV bool
	pairExportCSV  bool
	pairRmYes      bool
)

func init() {
	rootCmd.AddCommand(pairCmd)
	pairCmd.AddCommand(pairListCmd)
	pairCmd.AddCommand(pairAddCmd)
	pairCmd.AddCommand(pairRenameCmd)
	pairCmd.AddCommand(pairEditCmd)
	pairCmd.AddCommand(pairBiasCmd)
	pairCmd.AddCommand(pairToggleCmd)
	pairCmd.AddCommand(pairNoteCmd)
	pairCmd.AddCommand(pairHistoryCmd)
	pairCmd.AddCommand(pairRmCmd)
	pairCmd.AddCommand(pairExportCmd)

	pairHistoryCmd.Flags().BoolVar(&pairHistoryCSV, "csv", false, "write CSV to stdout")
	pairExportCmd.Flags().BoolVar(&pairExportCSV, "csv", false, "write the history of every pair as CSV")
	pairRmCmd.Flags().BoolVarP(&pairRmYes, "yes", "y", false, "confirm deletion")
}

func runPairList(s *session, cmd *cobra.Command, args []string) error {
	pairs := s.pairs.List()
	if len(pairs) == 0 {
		fmt.Println("No pairs. Add one with: tradedesk pair add <name>")
		return nil
	}

	now := time.Now()
	fmt.Println(titleStyle.Render(fmt.Sprintf("%-10s %-14s %-8s %-8s %s", "ID", "PAIR", "WEEKLY", "DAILY", "STATUS")))
	for _, p := range pairs {
		fmt.Printf("%-10s %-14s %s %s %s\n",
			shortRef(p.ID), truncate(pair.DisplayName(p), 14),
			pad(renderBias(p.WeeklyBias), 8), pad(renderBias(p.DailyBias), 8),
			renderStatus(pair.Status(p, now)))
		if p.DeleteAfter != nil {
			fmt.Println("  " + labelStyle.Render("unnamed, removed at "+p.DeleteAfter.Format(time.Kitchen)))
		}
	}
	return nil
}

func runPairAdd(s *session, cmd *cobra.Command, args []string) error {
	p := s.pairs.Create()
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		s.pairs.CommitName(p.ID, args[0])
		fmt.Printf("✓ Added pair %s (%s)\n", strings.TrimSpace(args[0]), p.ID)
		return nil
	}

	fmt.Printf("✓ Added unnamed pair %s\n", p.ID)
	if p.DeleteAfter != nil {
		fmt.Printf("  Name it before %s: tradedesk pair rename %s <name>\n",
			p.DeleteAfter.Format(time.Kitchen), shortRef(p.ID))
	}
	return nil
}

func runPairRename(s *session, cmd *cobra.Command, args []string) error {
	p, err := resolvePair(s.pairs.List(), args[0])
	if err != nil {
		return err
	}
	name := strings.TrimSpace(args[1])
	if name == "" {
		return fmt.Errorf("name must not be blank")
	}
	s.pairs.CommitName(p.ID, name)
	fmt.Printf("✓ %s is now %s\n", pair.DisplayName(p), name)
	return nil
}

func runPairEdit(s *session, cmd *cobra.Command, args []string) error {
	p, err := resolvePair(s.pairs.List(), args[0])
	if err != nil {
		return err
	}
	s.pairs.StartEditing(p.ID)
	fmt.Printf("✓ Editing %s\n", pair.DisplayName(p))
	return nil
}

func runPairBias(s *session, cmd *cobra.Command, args []string) error {
	p, err := resolvePair(s.pairs.List(), args[0])
	if err != nil {
		return err
	}
	tf, ok := pair.ParseTimeframe(args[1])
	if !ok {
		return fmt.Errorf("unknown timeframe %q (daily or weekly)", args[1])
	}
	b, ok := pair.ParseBias(args[2])
	if !ok {
		return fmt.Errorf("unknown bias %q (bullish or bearish)", args[2])
	}

	s.pairs.SetBias(p.ID, tf, b)
	p, _ = s.pairs.Get(p.ID)
	fmt.Printf("✓ %s %s bias %s, %s\n", pair.DisplayName(p), tf, renderBias(b),
		renderStatus(pair.Status(p, time.Now())))
	return nil
}

func runPairToggle(s *session, cmd *cobra.Command, args []string) error {
	p, err := resolvePair(s.pairs.List(), args[0])
	if err != nil {
		return err
	}
	s.pairs.ToggleInvalidation(p.ID)
	p, _ = s.pairs.Get(p.ID)
	fmt.Printf("✓ %s %s\n", pair.DisplayName(p), renderStatus(pair.Status(p, time.Now())))
	return nil
}

func runPairNote(s *session, cmd *cobra.Command, args []string) error {
	p, err := resolvePair(s.pairs.List(), args[0])
	if err != nil {
		return err
	}
	s.pairs.Update(p.ID, pair.FieldNotes, strings.Join(args[1:], " "))
	fmt.Printf("✓ Notes saved for %s\n", pair.DisplayName(p))
	return nil
}

func runPairHistory(s *session, cmd *cobra.Command, args []string) error {
	p, err := resolvePair(s.pairs.List(), args[0])
	if err != nil {
		return err
	}
	if pairHistoryCSV {
		return journal.WriteHistoryCSV(os.Stdout, []pair.Pair{p})
	}

	if len(p.History) == 0 {
		fmt.Printf("No history for %s yet.\n", pair.DisplayName(p))
		return nil
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("%-12s %-8s %s", "DATE", "DAILY", "WEEKLY")))
	for _, h := range p.History {
		fmt.Printf("%-12s %s %s\n", h.Date.Local().Format("2006-01-02"),
			pad(renderBias(h.DailyBias), 8), renderBias(h.WeeklyBias))
	}
	return nil
}

func runPairRm(s *session, cmd *cobra.Command, args []string) error {
	p, err := resolvePair(s.pairs.List(), args[0])
	if err != nil {
		return err
	}
	if !pairRmYes {
		return fmt.Errorf("refusing to delete %s without --yes", pair.DisplayName(p))
	}
	s.pairs.Delete(p.ID)
	fmt.Printf("✓ Deleted %s\n", pair.DisplayName(p))
	return nil
}

func runPairExport(s *session, cmd *cobra.Command, args []string) error {
	pairs := s.pairs.List()
	if pairExportCSV {
		return journal.WriteHistoryCSV(os.Stdout, pairs)
	}
	fmt.Println(journal.FormatPairsOrg(pairs, time.Now()))
	return nil
}
