package usecase

import (
	"testing"

	"github.com/homespice/backend/internal/domain"
)

func candidate(id string, score float64, cuisineMatch bool) ScoredCandidate {
	return ScoredCandidate{
		Item:         domain.MenuItem{ID: id},
		Score:        score,
		CuisineMatch: cuisineMatch,
	}
}

func TestComposeResults(t *testing.T) {
	t.Run("matched partition outranks higher-scored others", func(t *testing.T) {
		candidates := []ScoredCandidate{
			candidate("other-high", 120, false),
			candidate("matched-low", 25, true),
			candidate("matched-high", 60, true),
		}
		got := itemIDs(ComposeResults(candidates, true, 3))
		want := []string{"matched-high", "matched-low", "other-high"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("matched partition alone fills the limit", func(t *testing.T) {
		candidates := []ScoredCandidate{
			candidate("other", 200, false),
			candidate("m1", 50, true),
			candidate("m2", 40, true),
		}
		got := itemIDs(ComposeResults(candidates, true, 2))
		if len(got) != 2 || got[0] != "m1" || got[1] != "m2" {
			t.Errorf("got %v, want [m1 m2]", got)
		}
	})

	t.Run("no cuisine preference sorts purely by score", func(t *testing.T) {
		candidates := []ScoredCandidate{
			candidate("c", 10, false),
			candidate("a", 90, false),
			candidate("b", 45, true),
		}
		got := itemIDs(ComposeResults(candidates, false, 3))
		want := []string{"a", "b", "c"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("ties preserve catalog order", func(t *testing.T) {
		candidates := []ScoredCandidate{
			candidate("first", 30, false),
			candidate("second", 30, false),
			candidate("third", 30, false),
		}
		got := itemIDs(ComposeResults(candidates, false, 3))
		want := []string{"first", "second", "third"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		candidates := []ScoredCandidate{
			candidate("a", 3, false),
			candidate("b", 2, false),
			candidate("c", 1, false),
		}
		got := ComposeResults(candidates, false, 2)
		if len(got) != 2 {
			t.Errorf("got %d results, want 2", len(got))
		}
	})

	t.Run("no duplicates across partitions", func(t *testing.T) {
		candidates := []ScoredCandidate{
			candidate("m", 80, true),
			candidate("o1", 40, false),
			candidate("o2", -10, false),
		}
		got := itemIDs(ComposeResults(candidates, true, 5))
		seen := make(map[string]bool)
		for _, id := range got {
			if seen[id] {
				t.Fatalf("duplicate %s in %v", id, got)
			}
			seen[id] = true
		}
		if len(got) != 3 {
			t.Errorf("got %v, want all 3 candidates", got)
		}
	})

	t.Run("zero limit yields empty non-nil slice", func(t *testing.T) {
		got := ComposeResults([]ScoredCandidate{candidate("a", 1, false)}, false, 0)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty slice", got)
		}
	})

	t.Run("empty candidates yield empty non-nil slice", func(t *testing.T) {
		got := ComposeResults(nil, true, 5)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty slice", got)
		}
	})

	t.Run("input order is not mutated", func(t *testing.T) {
		candidates := []ScoredCandidate{
			candidate("low", 1, false),
			candidate("high", 99, false),
		}
		ComposeResults(candidates, false, 2)
		if candidates[0].Item.ID != "low" || candidates[1].Item.ID != "high" {
			t.Error("compose must not reorder the caller's slice")
		}
	})
}
