package cmd

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/rustyeddy/tradedesk/pair"
	"github.com/rustyeddy/tradedesk/risk"
)

// maxSuggestDistance bounds how far a mistyped name may be from the
// suggestion.
const maxSuggestDistance = 2

// resolve finds the item a user typed: an exact id, a case-insensitive
// name or a unique id prefix, in that order.
func resolve[T any](items []T, ref, kind string, idOf, nameOf func(T) string) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, fmt.Errorf("%s reference required", kind)
	}

	for _, it := range items {
		if idOf(it) == ref {
			return it, nil
		}
	}

	var byName []T
	for _, it := range items {
		if strings.EqualFold(strings.TrimSpace(nameOf(it)), ref) {
			byName = append(byName, it)
		}
	}
	switch len(byName) {
	case 1:
		return byName[0], nil
	case 0:
	default:
		return zero, fmt.Errorf("%s name %q is ambiguous, use the id", kind, ref)
	}

	var byPrefix []T
	upper := strings.ToUpper(ref)
	for _, it := range items {
		if strings.HasPrefix(idOf(it), upper) {
			byPrefix = append(byPrefix, it)
		}
	}
	switch len(byPrefix) {
	case 1:
		return byPrefix[0], nil
	case 0:
	default:
		return zero, fmt.Errorf("%s id prefix %q matches %d items", kind, ref, len(byPrefix))
	}

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, nameOf(it))
	}
	if s, ok := suggest(ref, names); ok {
		return zero, fmt.Errorf("no %s %q, did you mean %q?", kind, ref, s)
	}
	return zero, fmt.Errorf("no %s %q", kind, ref)
}

// suggest returns the name closest to ref within maxSuggestDistance.
func suggest(ref string, names []string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	ref = strings.ToLower(ref)
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		d := levenshtein.ComputeDistance(ref, strings.ToLower(n))
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, bestDist <= maxSuggestDistance
}

func resolvePair(pairs []pair.Pair, ref string) (pair.Pair, error) {
	return resolve(pairs, ref, "pair",
		func(p pair.Pair) string { return p.ID },
		func(p pair.Pair) string { return p.Name })
}

func resolveAccount(accounts []risk.Account, ref string) (risk.Account, error) {
	return resolve(accounts, ref, "account",
		func(a risk.Account) string { return a.ID },
		func(a risk.Account) string { return a.Name })
}
