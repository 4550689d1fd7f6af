package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/tradedesk/pair"
	"github.com/rustyeddy/tradedesk/pkg/id"
	"github.com/rustyeddy/tradedesk/risk"
	"github.com/sirupsen/logrus"
)

// Collections reads and writes the two collections through a Store.
// A missing or unreadable snapshot is replaced by the default seed; only
// failures of the store itself are reported as errors.
type Collections struct {
	Store    Store
	Defaults risk.Defaults
	NewID    func() string
	Log      *logrus.Entry
}

func (c *Collections) log() *logrus.Entry {
	if c.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger()).WithField("component", "journal")
	}
	return c.Log
}

// DefaultAccounts is the seed used when nothing usable is stored: one
// disabled account.
func (c *Collections) DefaultAccounts() []risk.Account {
	d := c.Defaults
	if d.RiskPercentage == "" {
		d = risk.DefaultDefaults
	}
	return []risk.Account{risk.NewAccount(c.newID(), d)}
}

func (c *Collections) newID() string {
	if c.NewID == nil {
		return id.New()
	}
	return c.NewID()
}

func (c *Collections) LoadAccounts(ctx context.Context) ([]risk.Account, error) {
	data, ok, err := c.Store.Get(ctx, KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyAccounts, err)
	}
	if !ok {
		return c.DefaultAccounts(), nil
	}

	var accounts []risk.Account
	if err := json.Unmarshal(data, &accounts); err != nil || accounts == nil {
		c.log().WithError(err).Warnf("%s snapshot unreadable, seeding defaults", KeyAccounts)
		return c.DefaultAccounts(), nil
	}

	for i, a := range accounts {
		if a.ID == "" {
			a.ID = c.newID()
		}
		if !a.AccountSize.Valid() {
			a.AccountSize = risk.SizeDisabled
		}
		if a.RoundTo < 0 {
			a.RoundTo = 0
		}
		accounts[i] = risk.Recalculate(a)
	}
	return accounts, nil
}

func (c *Collections) SaveAccounts(ctx context.Context, accounts []risk.Account) error {
	return c.put(ctx, KeyAccounts, accounts)
}

func (c *Collections) LoadPairs(ctx context.Context) ([]pair.Pair, error) {
	data, ok, err := c.Store.Get(ctx, KeyPairs)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyPairs, err)
	}
	if !ok {
		return []pair.Pair{}, nil
	}

	var pairs []pair.Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		c.log().WithError(err).Warnf("%s snapshot unreadable, starting empty", KeyPairs)
		return []pair.Pair{}, nil
	}
	if pairs == nil {
		pairs = []pair.Pair{}
	}
	for i := range pairs {
		if pairs[i].ID == "" {
			pairs[i].ID = c.newID()
		}
	}
	return pairs, nil
}

func (c *Collections) SavePairs(ctx context.Context, pairs []pair.Pair) error {
	return c.put(ctx, KeyPairs, pairs)
}

func (c *Collections) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.Store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// AccountWriter returns a listener that writes every new account state
// through to the store.
func (c *Collections) AccountWriter(ctx context.Context) func([]risk.Account) {
	return func(accounts []risk.Account) {
		if err := c.SaveAccounts(ctx, accounts); err != nil {
			c.log().WithError(err).Error("write-through failed")
		}
	}
}

// PairWriter returns a listener that writes every new pair state through
// to the store.
func (c *Collections) PairWriter(ctx context.Context) func([]pair.Pair) {
	return func(pairs []pair.Pair) {
		if err := c.SavePairs(ctx, pairs); err != nil {
			c.log().WithError(err).Error("write-through failed")
		}
	}
}
