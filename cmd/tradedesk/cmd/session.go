package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/tradedesk/desk"
	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// session holds the collections for one command invocation. Every change
// made through accounts or pairs is written through to the store.
type session struct {
	store    journal.Store
	accounts *desk.AccountBook
	pairs    *desk.PairBoard
}

func openSession(ctx context.Context) (*session, error) {
	store, err := journal.Open(cfg.Store.Type, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Type, err)
	}

	col := &journal.Collections{
		Store:    store,
		Defaults: cfg.Accounts.Defaults(),
		Log:      logger.Component(log, "journal"),
	}
	accts, err := col.LoadAccounts(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	ps, err := col.LoadPairs(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}

	ttl, err := cfg.Pairs.ParseTTL()
	if err != nil {
		store.Close()
		return nil, err
	}

	s := &session{store: store}
	s.accounts = desk.NewAccountBook(accts, desk.AccountBookOptions{
		Defaults: cfg.Accounts.Defaults(),
		Log:      logrus.NewEntry(log),
	})
	s.accounts.Subscribe(col.AccountWriter(ctx))

	s.pairs = desk.NewPairBoard(ps, desk.PairBoardOptions{
		TTL: ttl,
		Log: logrus.NewEntry(log),
	})
	s.pairs.Subscribe(col.PairWriter(ctx))
	s.pairs.PurgeExpired(time.Now())

	log.WithField("store", cfg.Store.Type).Debugf("loaded %d accounts, %d pairs",
		len(s.accounts.List()), len(s.pairs.List()))
	return s, nil
}

func (s *session) Close() error {
	s.pairs.Close()
	return s.store.Close()
}

// withSession adapts a command body that needs the collections into a
// cobra RunE.
func withSession(fn func(s *session, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(s, cmd, args)
	}
}
