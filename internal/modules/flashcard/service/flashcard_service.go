package service

import (
	"context"
	"fmt"

	"gojuon/internal/modules/flashcard/domain"
	flashcardout "gojuon/internal/modules/flashcard/port/out"
	apperrors "gojuon/internal/platform/errors"
	"gojuon/internal/platform/randsrc"
)

// FlashcardService owns the deck in play.
type FlashcardService struct {
	catalog flashcardout.CatalogPort
	rand    randsrc.Source
	deck    *domain.Deck
}

func NewFlashcardService(catalog flashcardout.CatalogPort, rand randsrc.Source) *FlashcardService {
	return &FlashcardService{catalog: catalog, rand: rand}
}

// Load builds a fresh deck for the script.
func (s *FlashcardService) Load(ctx context.Context, script string) (*domain.Deck, error) {
	entries, err := s.catalog.Cards(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	cards := make([]domain.Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, domain.Card{Glyph: e.Glyph, Canonical: e.Canonical, Romaji: e.Romaji})
	}
	deck, err := domain.NewDeck(cards)
	if err != nil {
		return nil, err
	}
	s.deck = deck
	return deck, nil
}

// Deck returns the deck in play, if any.
func (s *FlashcardService) Deck() (*domain.Deck, error) {
	if s.deck == nil {
		return nil, apperrors.ErrNoQuestion
	}
	return s.deck, nil
}

func (s *FlashcardService) Shuffle() (*domain.Deck, error) {
	deck, err := s.Deck()
	if err != nil {
		return nil, err
	}
	deck.Shuffle(s.rand.Shuffle)
	return deck, nil
}
