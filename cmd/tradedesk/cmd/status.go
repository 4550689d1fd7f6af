package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/pair"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarise the store and both collections",
	Args:  cobra.NoArgs,
	RunE:  withSession(runStatus),
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(s *session, cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("tradedesk " + version))
	fmt.Printf("%s %s %s\n", labelStyle.Render("Store:"), cfg.Store.Type, cfg.Store.Path)

	saved := func(key string) string {
		st, ok := s.store.(journal.Stamper)
		if !ok {
			return ""
		}
		at, found, err := st.UpdatedAt(cmd.Context(), key)
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("read save time")
			return ""
		}
		if !found {
			return ", never saved"
		}
		return ", saved " + at.Local().Format("2006-01-02 15:04:05")
	}

	now := time.Now()
	valid := 0
	pairs := s.pairs.List()
	for _, p := range pairs {
		if pair.IsValid(p, now) {
			valid++
		}
	}

	fmt.Printf("%s %d%s\n", labelStyle.Render("Accounts:"), len(s.accounts.List()), saved(journal.KeyAccounts))
	fmt.Printf("%s %d, %s%s\n", labelStyle.Render("Pairs:"), len(pairs),
		validStyle.Render(fmt.Sprintf("%d valid today", valid)), saved(journal.KeyPairs))
	return nil
}
