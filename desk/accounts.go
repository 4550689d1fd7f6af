package desk

import (
	"github.com/rustyeddy/tradedesk/pkg/id"
	"github.com/rustyeddy/tradedesk/risk"
	"github.com/sirupsen/logrus"
)

type AccountBookOptions struct {
	Defaults risk.Defaults
	NewID    func() string
	Log      *logrus.Entry
}

// AccountBook is the UI-facing API over the account collection.
type AccountBook struct {
	owner    *Owner[risk.Account]
	defaults risk.Defaults
	newID    func() string
	log      *logrus.Entry
}

func NewAccountBook(initial []risk.Account, opts AccountBookOptions) *AccountBook {
	b := &AccountBook{
		defaults: opts.Defaults,
		newID:    opts.NewID,
		log:      opts.Log,
	}
	if b.defaults.RiskPercentage == "" {
		b.defaults = risk.DefaultDefaults
	}
	if b.newID == nil {
		b.newID = id.New
	}
	if b.log == nil {
		b.log = logrus.NewEntry(logrus.StandardLogger())
	}
	b.log = b.log.WithField("component", "accounts")

	accounts := make([]risk.Account, 0, len(initial))
	for _, a := range initial {
		accounts = append(accounts, risk.Recalculate(a))
	}
	b.owner = NewOwner(accounts)
	return b
}

func (b *AccountBook) List() []risk.Account {
	return b.owner.Get()
}

func (b *AccountBook) Get(accountID string) (risk.Account, bool) {
	for _, a := range b.owner.Get() {
		if a.ID == accountID {
			return a, true
		}
	}
	return risk.Account{}, false
}

// Create appends a new disabled account with the configured defaults.
func (b *AccountBook) Create() risk.Account {
	a := risk.NewAccount(b.newID(), b.defaults)
	b.owner.Apply(func(items []risk.Account) ([]risk.Account, bool) {
		return append(items, a), true
	})
	b.log.WithField("account", a.ID).Debug("account created")
	return a
}

// Update sets one field and re-derives the account. Unknown ids are
// ignored.
func (b *AccountBook) Update(accountID string, f risk.Field, value string) []risk.Account {
	return b.owner.Apply(func(items []risk.Account) ([]risk.Account, bool) {
		for i, a := range items {
			if a.ID != accountID {
				continue
			}
			next := risk.Apply(a, f, value)
			if next == a {
				return items, false
			}
			items[i] = next
			b.log.WithFields(logrus.Fields{"account": accountID, "field": f}).Debug("account updated")
			return items, true
		}
		return items, false
	})
}

func (b *AccountBook) Delete(accountID string) []risk.Account {
	return b.owner.Apply(func(items []risk.Account) ([]risk.Account, bool) {
		for i, a := range items {
			if a.ID == accountID {
				b.log.WithField("account", accountID).Debug("account deleted")
				return append(items[:i], items[i+1:]...), true
			}
		}
		return items, false
	})
}

// Subscribe registers l for every change to the collection.
func (b *AccountBook) Subscribe(l Listener[risk.Account]) {
	b.owner.Subscribe(l)
}
