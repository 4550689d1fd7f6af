package cmd

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/risk"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:     "account",
	Aliases: []string{"accounts", "acct"},
	Short:   "Manage prop-firm risk accounts",
	Long: `Track prop-firm accounts and the risk each trade may take.

Subcommands:
  list   - List accounts with risk amount and remaining trades
  add    - Add an account
  set    - Change one field of an account
  show   - Show an account as an Org-mode block
  rm     - Delete an account
  export - Print every account as Org-mode

Examples:
  tradedesk account add --name "FTMO 10k"
  tradedesk account set "FTMO 10k" accountSize 10000
  tradedesk account set "FTMO 10k" balance 9650
  tradedesk account show "FTMO 10k"`,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE:  withSession(runAccountList),
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an account with the configured defaults",
	Args:  cobra.NoArgs,
	RunE:  withSession(runAccountAdd),
}

var accountSetCmd = &cobra.Command{
	Use:   "set <account> <field> <value>",
	Short: "Change one field of an account",
	Long: `Change one field of an account and recalculate it.

Fields: ` + joinFields(risk.Fields) + `

Values are taken as typed; an account size outside the supported sizes,
or an unknown calculation mode, leaves the account unchanged.`,
	Args: cobra.ExactArgs(3),
	RunE: withSession(runAccountSet),
}

var accountShowCmd = &cobra.Command{
	Use:   "show <account>",
	Short: "Show an account as an Org-mode block",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(runAccountShow),
}

var accountRmCmd = &cobra.Command{
	Use:   "rm <account>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(runAccountRm),
}

var accountExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print every account as Org-mode",
	Args:  cobra.NoArgs,
	RunE:  withSession(runAccountExport),
}

var (
	accountAddName string
	accountRmYes   bool
)

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountAddCmd)
	accountCmd.AddCommand(accountSetCmd)
	accountCmd.AddCommand(accountShowCmd)
	accountCmd.AddCommand(accountRmCmd)
	accountCmd.AddCommand(accountExportCmd)

	accountAddCmd.Flags().StringVarP(&accountAddName, "name", "n", "", "account name")
	accountRmCmd.Flags().BoolVarP(&accountRmYes, "yes", "y", false, "confirm deletion")
}

func runAccountList(s *session, cmd *cobra.Command, args []string) error {
	accounts := s.accounts.List()
	if len(accounts) == 0 {
		fmt.Println("No accounts.")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%-10s %-20s %-10s %12s %10s %8s", "ID", "NAME", "SIZE", "BALANCE", "RISK", "TRADES")))
	for _, a := range accounts {
		d := risk.Evaluate(a)
		line := fmt.Sprintf("%-10s %-20s %-10s %12.2f %10.2f %8d",
			shortRef(a.ID), truncate(a.Name, 20), a.AccountSize, d.ActualBalance, d.RiskAmount, d.RemainingTrades)
		fmt.Println(line)
		for _, v := range d.Violations {
			fmt.Println("  " + warningStyle.Render(fmt.Sprintf("%s: %s", v.Code, v.Msg)))
		}
	}
	return nil
}

func runAccountAdd(s *session, cmd *cobra.Command, args []string) error {
	a := s.accounts.Create()
	if accountAddName != "" {
		s.accounts.Update(a.ID, risk.FieldName, accountAddName)
		a, _ = s.accounts.Get(a.ID)
	}
	fmt.Printf("✓ Added account %s\n", a.ID)
	return nil
}

func runAccountSet(s *session, cmd *cobra.Command, args []string) error {
	a, err := resolveAccount(s.accounts.List(), args[0])
	if err != nil {
		return err
	}
	f, ok := risk.ParseField(args[1])
	if !ok {
		return fmt.Errorf("unknown field %q (fields: %s)", args[1], joinFields(risk.Fields))
	}

	s.accounts.Update(a.ID, f, args[2])
	updated, _ := s.accounts.Get(a.ID)
	if updated == a {
		fmt.Println(warningStyle.Render(fmt.Sprintf("%s unchanged", f)))
	}
	fmt.Println(journal.FormatAccountOrg(updated))
	return nil
}

func runAccountShow(s *session, cmd *cobra.Command, args []string) error {
	a, err := resolveAccount(s.accounts.List(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(journal.FormatAccountOrg(a))
	return nil
}

func runAccountRm(s *session, cmd *cobra.Command, args []string) error {
	a, err := resolveAccount(s.accounts.List(), args[0])
	if err != nil {
		return err
	}
	if !accountRmYes {
		return fmt.Errorf("refusing to delete account %s without --yes", a.ID)
	}
	s.accounts.Delete(a.ID)
	fmt.Printf("✓ Deleted account %s\n", a.ID)
	return nil
}

func runAccountExport(s *session, cmd *cobra.Command, args []string) error {
	fmt.Println(journal.FormatAccountsOrg(s.accounts.List()))
	return nil
}

func joinFields[F ~string](fields []F) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

func shortRef(id string) string {
	if len(id) <= 10 {
		return id
	}
	return id[:10]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
