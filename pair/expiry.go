package pair

import "time"

// Pending reports whether p was added but never named. Pending pairs are
// discarded once their deadline passes.
func Pending(p Pair) bool {
	return p.IsEditing && p.Name == ""
}

// Rearm recomputes the deletion deadline after p was touched at now: a
// pending pair gets a fresh deadline, any other pair loses it.
func Rearm(p Pair, now time.Time, ttl time.Duration) Pair {
	if !Pending(p) {
		p.DeleteAfter = nil
		return p
	}
	at := now.Add(ttl)
	p.DeleteAfter = &at
	return p
}

// Expired reports whether p is pending and its deadline is at or before now.
func Expired(p Pair, now time.Time) bool {
	return Pending(p) && p.DeleteAfter != nil && !now.Before(*p.DeleteAfter)
}

// PurgeExpired drops every expired pair and returns the survivors along
// with the ids removed. Order of the survivors is preserved.
func PurgeExpired(pairs []Pair, now time.Time) ([]Pair, []string) {
	var removed []string
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if Expired(p, now) {
			removed = append(removed, p.ID)
			continue
		}
		out = append(out, p)
	}
	return out, removed
}
