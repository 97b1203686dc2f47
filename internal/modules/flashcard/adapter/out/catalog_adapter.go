package out

import (
	"context"

	catalogdto "gojuon/internal/modules/catalog/dto"
	catalogin "gojuon/internal/modules/catalog/port/in"
	flashcardout "gojuon/internal/modules/flashcard/port/out"
)

// CatalogAdapter builds card material from the catalog module, resolving
// each glyph's hiragana form up front.
type CatalogAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogAdapter(catalog catalogin.Usecase) flashcardout.CatalogPort {
	return &CatalogAdapter{catalog: catalog}
}

func (a *CatalogAdapter) Cards(ctx context.Context, script string) ([]flashcardout.Entry, error) {
	entries, err := a.catalog.List(ctx, catalogdto.ListInput{Script: script})
	if err != nil {
		return nil, err
	}
	out := make([]flashcardout.Entry, 0, len(entries))
	for _, e := range entries {
		canonical := e.Glyph
		if script == "katakana" {
			hira, err := a.catalog.Correspond(ctx, catalogdto.CorrespondInput{Glyph: e.Glyph, From: "katakana", To: "hiragana"})
			if err == nil {
				canonical = hira.Glyph
			}
		}
		out = append(out, flashcardout.Entry{Glyph: e.Glyph, Canonical: canonical, Romaji: e.Romaji})
	}
	return out, nil
}
