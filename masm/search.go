package masm

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search returns up to limit entries whose names contain the characters of
// query in order, ignoring case, closest matches first. A limit <= 0 returns
// every match.
func Search(query string, limit int) []Entry {
	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	res := make([]Entry, len(ranks))
	for i, r := range ranks {
		res[i] = all[r.OriginalIndex]
	}
	return res
}
