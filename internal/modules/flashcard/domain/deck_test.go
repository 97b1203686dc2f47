package domain_test

import (
	"errors"
	"testing"

	"gojuon/internal/modules/flashcard/domain"
	apperrors "gojuon/internal/platform/errors"
)

func newDeck(t *testing.T) *domain.Deck {
	t.Helper()
	deck, err := domain.NewDeck([]domain.Card{
		{Glyph: "あ", Canonical: "あ", Romaji: "a"},
		{Glyph: "い", Canonical: "い", Romaji: "i"},
		{Glyph: "う", Canonical: "う", Romaji: "u"},
	})
	if err != nil {
		t.Fatalf("NewDeck: %v", err)
	}
	return deck
}

func TestNewDeckRejectsEmpty(t *testing.T) {
	t.Parallel()
	if _, err := domain.NewDeck(nil); !errors.Is(err, apperrors.ErrNoQuestion) {
		t.Fatalf("err = %v, want ErrNoQuestion", err)
	}
}

func TestNavigationWrapsAround(t *testing.T) {
	t.Parallel()
	deck := newDeck(t)

	deck.Prev()
	if deck.Current().Glyph != "う" {
		t.Fatalf("prev from first = %s, want う", deck.Current().Glyph)
	}
	deck.Next()
	if deck.Current().Glyph != "あ" {
		t.Fatalf("next from last = %s, want あ", deck.Current().Glyph)
	}
}

func TestNavigationResetsFlip(t *testing.T) {
	t.Parallel()
	deck := newDeck(t)

	deck.Flip()
	if !deck.Flipped() {
		t.Fatal("deck should be flipped")
	}
	deck.Next()
	if deck.Flipped() {
		t.Fatal("navigation should land on the front side")
	}
}

func TestShuffleRewinds(t *testing.T) {
	t.Parallel()
	deck := newDeck(t)
	deck.Next()
	deck.Flip()

	// reverse the deck deterministically
	deck.Shuffle(func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	})
	if deck.Index() != 0 || deck.Flipped() {
		t.Fatalf("after shuffle: index %d flipped %v, want 0 and front", deck.Index(), deck.Flipped())
	}
	if deck.Current().Glyph != "う" {
		t.Fatalf("first card = %s, want う after reversal", deck.Current().Glyph)
	}
}
