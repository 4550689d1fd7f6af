package desk

import (
	"time"

	"github.com/rustyeddy/tradedesk/expiry"
	"github.com/rustyeddy/tradedesk/pair"
	"github.com/rustyeddy/tradedesk/pkg/id"
	"github.com/sirupsen/logrus"
)

type PairBoardOptions struct {
	// TTL is how long an added pair may stay unnamed. Zero means
	// pair.DefaultUnnamedTTL.
	TTL   time.Duration
	Now   func() time.Time
	NewID func() string
	Log   *logrus.Entry
}

// PairBoard is the UI-facing API over the pair collection. Unnamed pairs
// are deleted when their deadline passes; the deadline moves every time
// the pair is touched and disappears once the pair is named.
type PairBoard struct {
	owner *Owner[pair.Pair]
	sched *expiry.Scheduler
	ttl   time.Duration
	now   func() time.Time
	newID func() string
	log   *logrus.Entry
}

func NewPairBoard(initial []pair.Pair, opts PairBoardOptions) *PairBoard {
	b := &PairBoard{
		ttl:   opts.TTL,
		now:   opts.Now,
		newID: opts.NewID,
		log:   opts.Log,
	}
	if b.ttl <= 0 {
		b.ttl = pair.DefaultUnnamedTTL
	}
	if b.now == nil {
		b.now = time.Now
	}
	if b.newID == nil {
		b.newID = id.New
	}
	if b.log == nil {
		b.log = logrus.NewEntry(logrus.StandardLogger())
	}
	b.log = b.log.WithField("component", "pairs")
	b.sched = expiry.New(b.now)

	now := b.now()
	pairs := make([]pair.Pair, 0, len(initial))
	for _, p := range initial {
		pairs = append(pairs, normalize(p, now, b.ttl))
	}

	b.owner = NewOwner(pairs)
	b.owner.Subscribe(b.syncExpiry)
	b.syncExpiry(b.owner.Get())
	return b
}

// normalize repairs a pair loaded from an older or hand-edited snapshot.
func normalize(p pair.Pair, now time.Time, ttl time.Duration) pair.Pair {
	if p.History == nil {
		p.History = []pair.HistoryEntry{}
	}
	if len(p.History) > pair.HistoryCap {
		p.History = p.History[:pair.HistoryCap]
	}
	switch {
	case !pair.Pending(p):
		p.DeleteAfter = nil
	case p.DeleteAfter == nil:
		p = pair.Rearm(p, now, ttl)
	}
	return p
}

// syncExpiry makes the scheduler hold exactly one task per pending pair,
// due at the deadline stored on the pair.
func (b *PairBoard) syncExpiry(pairs []pair.Pair) {
	live := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if !pair.Pending(p) || p.DeleteAfter == nil {
			continue
		}
		live[p.ID] = true
		b.sched.Schedule(p.ID, *p.DeleteAfter, b.expire)
	}
	for _, k := range b.sched.Keys() {
		if !live[k] {
			b.sched.Cancel(k)
		}
	}
}

func (b *PairBoard) expire() {
	b.PurgeExpired(b.now())
}

func (b *PairBoard) List() []pair.Pair {
	return b.owner.Get()
}

func (b *PairBoard) Get(pairID string) (pair.Pair, bool) {
	for _, p := range b.owner.Get() {
		if p.ID == pairID {
			return p, true
		}
	}
	return pair.Pair{}, false
}

// Valid reports the current validity of a pair and whether it exists.
func (b *PairBoard) Valid(pairID string) (bool, bool) {
	p, ok := b.Get(pairID)
	if !ok {
		return false, false
	}
	return pair.IsValid(p, b.now()), true
}

// Create appends a new unnamed pair in editing state.
func (b *PairBoard) Create() pair.Pair {
	p := pair.New(b.newID(), b.now(), b.ttl)
	b.owner.Apply(func(items []pair.Pair) ([]pair.Pair, bool) {
		return append(items, p), true
	})
	b.log.WithField("pair", p.ID).Debug("pair created")
	return p
}

// mutate applies fn to one pair and re-arms its deadline. Unknown ids,
// and edits that leave the pair as it was, are no-ops.
func (b *PairBoard) mutate(pairID string, fn func(p pair.Pair, now time.Time) pair.Pair) []pair.Pair {
	now := b.now()
	return b.owner.Apply(func(items []pair.Pair) ([]pair.Pair, bool) {
		for i, p := range items {
			if p.ID != pairID {
				continue
			}
			next := fn(p, now)
			if pair.Equal(next, p) {
				return items, false
			}
			items[i] = pair.Rearm(next, now, b.ttl)
			return items, true
		}
		return items, false
	})
}

// Update sets one field from user text.
func (b *PairBoard) Update(pairID string, f pair.Field, value string) []pair.Pair {
	return b.mutate(pairID, func(p pair.Pair, now time.Time) pair.Pair {
		return pair.Apply(p, f, value, now)
	})
}

// CommitName names a pair and ends editing when the name is not blank.
func (b *PairBoard) CommitName(pairID, name string) []pair.Pair {
	b.log.WithFields(logrus.Fields{"pair": pairID, "name": name}).Debug("commit name")
	return b.mutate(pairID, func(p pair.Pair, _ time.Time) pair.Pair {
		return pair.CommitName(p, name)
	})
}

func (b *PairBoard) StartEditing(pairID string) []pair.Pair {
	return b.mutate(pairID, func(p pair.Pair, _ time.Time) pair.Pair {
		return pair.StartEditing(p)
	})
}

func (b *PairBoard) SetBias(pairID string, tf pair.Timeframe, bias pair.Bias) []pair.Pair {
	b.log.WithFields(logrus.Fields{"pair": pairID, "timeframe": tf, "bias": bias}).Debug("set bias")
	return b.mutate(pairID, func(p pair.Pair, now time.Time) pair.Pair {
		return pair.SetBias(p, tf, bias, now)
	})
}

func (b *PairBoard) ToggleInvalidation(pairID string) []pair.Pair {
	return b.mutate(pairID, func(p pair.Pair, _ time.Time) pair.Pair {
		return pair.ToggleInvalidation(p)
	})
}

func (b *PairBoard) Delete(pairID string) []pair.Pair {
	return b.owner.Apply(func(items []pair.Pair) ([]pair.Pair, bool) {
		for i, p := range items {
			if p.ID == pairID {
				b.log.WithField("pair", pairID).Debug("pair deleted")
				return append(items[:i], items[i+1:]...), true
			}
		}
		return items, false
	})
}

// PurgeExpired deletes every unnamed pair whose deadline is at or before
// now.
func (b *PairBoard) PurgeExpired(now time.Time) []pair.Pair {
	var removed []string
	out := b.owner.Apply(func(items []pair.Pair) ([]pair.Pair, bool) {
		var kept []pair.Pair
		kept, removed = pair.PurgeExpired(items, now)
		return kept, len(removed) > 0
	})
	if len(removed) == 0 {
		// a timer may have fired for a pair that is not due yet
		b.owner.Apply(func(items []pair.Pair) ([]pair.Pair, bool) {
			b.syncExpiry(items)
			return items, false
		})
		return out
	}
	b.log.WithField("pairs", removed).Info("discarded unnamed pairs")
	return out
}

// Subscribe registers l for every change to the collection.
func (b *PairBoard) Subscribe(l Listener[pair.Pair]) {
	b.owner.Subscribe(l)
}

// Close cancels every pending expiry.
func (b *PairBoard) Close() {
	b.sched.Stop()
}
