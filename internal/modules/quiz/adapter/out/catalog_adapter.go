package out

import (
	"context"

	catalogdto "gojuon/internal/modules/catalog/dto"
	catalogin "gojuon/internal/modules/catalog/port/in"
	quizout "gojuon/internal/modules/quiz/port/out"
)

// CatalogAdapter feeds the quiz engine from the catalog module.
type CatalogAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogAdapter(catalog catalogin.Usecase) quizout.CatalogPort {
	return &CatalogAdapter{catalog: catalog}
}

func (a *CatalogAdapter) Sample(ctx context.Context, script string, count int) ([]quizout.Entry, error) {
	entries, err := a.catalog.Sample(ctx, catalogdto.SampleInput{Count: count, Script: script})
	if err != nil {
		return nil, err
	}
	return toEntries(entries), nil
}

func (a *CatalogAdapter) Distractors(ctx context.Context, glyph, script string, count int) ([]quizout.Entry, error) {
	entries, err := a.catalog.Distractors(ctx, catalogdto.DistractorsInput{Glyph: glyph, Script: script, Count: count})
	if err != nil {
		return nil, err
	}
	return toEntries(entries), nil
}

func toEntries(list []catalogdto.KanaOutput) []quizout.Entry {
	out := make([]quizout.Entry, 0, len(list))
	for _, k := range list {
		out = append(out, quizout.Entry{Glyph: k.Glyph, Romaji: k.Romaji})
	}
	return out
}
