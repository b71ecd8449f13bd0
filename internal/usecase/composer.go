package usecase

import (
	"sort"

	"github.com/homespice/backend/internal/domain"
)

// ComposeResults orders scored candidates into the final recommendation list.
//
// With a cuisine preference, cuisine-matched candidates form a priority
// partition: they fill the result first, score-sorted, before any
// non-matching candidate is considered. Without one, everything competes on
// score alone. If the primary pass leaves unfilled slots, leftovers above the
// backfill threshold top the list up in score order. Sorts are stable, so
// ties keep the cascade's catalog order.
func ComposeResults(candidates []ScoredCandidate, hasCuisinePreference bool, limit int) []domain.MenuItem {
	if limit <= 0 || len(candidates) == 0 {
		return []domain.MenuItem{}
	}

	result := make([]domain.MenuItem, 0, limit)
	taken := make(map[string]bool, limit)

	take := func(pool []ScoredCandidate) {
		for _, c := range pool {
			if len(result) >= limit {
				return
			}
			if taken[c.Item.ID] {
				continue
			}
			result = append(result, c.Item)
			taken[c.Item.ID] = true
		}
	}

	if hasCuisinePreference {
		var matched, other []ScoredCandidate
		for _, c := range candidates {
			if c.CuisineMatch {
				matched = append(matched, c)
			} else {
				other = append(other, c)
			}
		}
		sortByScore(matched)
		sortByScore(other)
		take(matched)
		take(other)
	} else {
		all := make([]ScoredCandidate, len(candidates))
		copy(all, candidates)
		sortByScore(all)
		take(all)
	}

	// Backfill any remaining slots from leftovers that are not hopeless
	if len(result) < limit {
		leftovers := make([]ScoredCandidate, 0, len(candidates))
		for _, c := range candidates {
			if !taken[c.Item.ID] && c.Score > backfillThreshold {
				leftovers = append(leftovers, c)
			}
		}
		sortByScore(leftovers)
		take(leftovers)
	}

	return result
}

func sortByScore(candidates []ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
