package service_test

import (
	"errors"
	"testing"

	"gojuon/internal/modules/catalog/domain"
	"gojuon/internal/modules/catalog/service"
	apperrors "gojuon/internal/platform/errors"
)

// fixedRand leaves order untouched so selections are deterministic.
type fixedRand struct{}

func (fixedRand) Intn(n int) int                   { return 0 }
func (fixedRand) Shuffle(int, func(i, j int))      {}

func newService() *service.CatalogService {
	return service.NewCatalogService(fixedRand{})
}

func TestListExcludesArchaicByDefault(t *testing.T) {
	t.Parallel()
	svc := newService()

	entries := svc.List(domain.Hiragana, false)
	if len(entries) != 46 {
		t.Fatalf("expected 46 non-archaic hiragana, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Archaic() {
			t.Fatalf("archaic glyph %q leaked into default listing", e.Glyph)
		}
	}

	all := svc.List(domain.Hiragana, true)
	if len(all) != 48 {
		t.Fatalf("expected 48 hiragana including archaic, got %d", len(all))
	}
}

func TestLookupMissIsSentinel(t *testing.T) {
	t.Parallel()
	svc := newService()

	if _, err := svc.Lookup("あ", domain.Hiragana); err != nil {
		t.Fatalf("lookup あ: %v", err)
	}
	_, err := svc.Lookup("x", domain.Hiragana)
	if !errors.Is(err, apperrors.ErrKanaNotFound) {
		t.Fatalf("expected ErrKanaNotFound, got %v", err)
	}
}

func TestByRowKeepsCatalogOrder(t *testing.T) {
	t.Parallel()
	svc := newService()

	entries, err := svc.ByRow("ka-row", domain.Hiragana)
	if err != nil {
		t.Fatalf("by row: %v", err)
	}
	want := []string{"か", "き", "く", "け", "こ"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Glyph != want[i] {
			t.Fatalf("row order broken at %d: got %q want %q", i, e.Glyph, want[i])
		}
	}

	if _, err := svc.ByRow("z-row", domain.Hiragana); !errors.Is(err, apperrors.ErrUnknownRow) {
		t.Fatalf("expected ErrUnknownRow, got %v", err)
	}
}

func TestSampleClampsToPool(t *testing.T) {
	t.Parallel()
	svc := newService()

	entries := svc.Sample(100, domain.Katakana, "", false)
	if len(entries) != 46 {
		t.Fatalf("oversized sample should return whole pool, got %d", len(entries))
	}

	row := svc.Sample(3, domain.Hiragana, "ya-row", false)
	if len(row) != 3 {
		t.Fatalf("expected 3 ya-row entries, got %d", len(row))
	}
	for _, e := range row {
		if e.Row != "ya-row" {
			t.Fatalf("row filter leaked %q", e.Glyph)
		}
	}
}

func TestSampleReturnsDistinctEntries(t *testing.T) {
	t.Parallel()
	svc := newService()

	entries := svc.Sample(20, domain.Hiragana, "", false)
	if len(entries) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(entries))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.Glyph] {
			t.Fatalf("duplicate glyph %q in sample", e.Glyph)
		}
		seen[e.Glyph] = true
	}
}

func TestDistractorsNeverIncludeTargetOrArchaic(t *testing.T) {
	t.Parallel()
	svc := newService()

	target, err := svc.Lookup("か", domain.Hiragana)
	if err != nil {
		t.Fatalf("lookup target: %v", err)
	}
	got := svc.Distractors(target, domain.Hiragana, 3)
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 distractors, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, e := range got {
		if e.Glyph == target.Glyph {
			t.Fatalf("target leaked into distractors")
		}
		if e.Archaic() {
			t.Fatalf("archaic glyph %q offered as distractor", e.Glyph)
		}
		if seen[e.Glyph] {
			t.Fatalf("duplicate distractor %q", e.Glyph)
		}
		seen[e.Glyph] = true
	}
}

func TestDistractorsPreferRowOrNearbyDifficulty(t *testing.T) {
	t.Parallel()
	svc := newService()

	target, _ := svc.Lookup("か", domain.Hiragana)
	for _, e := range svc.Distractors(target, domain.Hiragana, 3) {
		sameRow := e.Row == target.Row
		nearby := e.Difficulty-target.Difficulty <= 1 && target.Difficulty-e.Difficulty <= 1
		if !sameRow && !nearby {
			t.Fatalf("distractor %q (row %s, tier %d) matches neither preference", e.Glyph, e.Row, e.Difficulty)
		}
	}
}

func TestCorrespondAcrossScripts(t *testing.T) {
	t.Parallel()
	svc := newService()

	entry, err := svc.Correspond("か", domain.Hiragana, domain.Katakana)
	if err != nil {
		t.Fatalf("correspond か: %v", err)
	}
	if entry.Glyph != "カ" {
		t.Fatalf("expected カ, got %q", entry.Glyph)
	}

	back, err := svc.Correspond(entry.Glyph, domain.Katakana, domain.Hiragana)
	if err != nil {
		t.Fatalf("correspond back: %v", err)
	}
	if back.Glyph != "か" {
		t.Fatalf("round trip broke: got %q", back.Glyph)
	}

	if _, err := svc.Correspond("missing", domain.Hiragana, domain.Katakana); !errors.Is(err, apperrors.ErrKanaNotFound) {
		t.Fatalf("expected ErrKanaNotFound for unknown glyph, got %v", err)
	}
}

func TestEveryNonArchaicKanaHasCounterpart(t *testing.T) {
	t.Parallel()
	svc := newService()

	for _, e := range svc.List(domain.Hiragana, false) {
		if _, err := svc.Correspond(e.Glyph, domain.Hiragana, domain.Katakana); err != nil {
			t.Fatalf("%q has no katakana counterpart: %v", e.Glyph, err)
		}
	}
}
