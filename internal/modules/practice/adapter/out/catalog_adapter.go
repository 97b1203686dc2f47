package out

import (
	"context"

	catalogdto "gojuon/internal/modules/catalog/dto"
	catalogin "gojuon/internal/modules/catalog/port/in"
	practiceout "gojuon/internal/modules/practice/port/out"
)

// CatalogAdapter answers the practice module's material queries from the
// catalog module.
type CatalogAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogAdapter(catalog catalogin.Usecase) practiceout.CatalogPort {
	return &CatalogAdapter{catalog: catalog}
}

func (a *CatalogAdapter) Sample(ctx context.Context, script, row string, count int) ([]practiceout.Entry, error) {
	entries, err := a.catalog.Sample(ctx, catalogdto.SampleInput{Count: count, Script: script, Row: row})
	if err != nil {
		return nil, err
	}
	return toEntries(entries), nil
}

func (a *CatalogAdapter) Distractors(ctx context.Context, glyph, script string, count int) ([]practiceout.Entry, error) {
	entries, err := a.catalog.Distractors(ctx, catalogdto.DistractorsInput{Glyph: glyph, Script: script, Count: count})
	if err != nil {
		return nil, err
	}
	return toEntries(entries), nil
}

// Canonical maps a katakana glyph to its hiragana form; hiragana glyphs are
// already canonical.
func (a *CatalogAdapter) Canonical(ctx context.Context, glyph, script string) (string, error) {
	if script != "katakana" {
		return glyph, nil
	}
	out, err := a.catalog.Correspond(ctx, catalogdto.CorrespondInput{Glyph: glyph, From: "katakana", To: "hiragana"})
	if err != nil {
		return "", err
	}
	return out.Glyph, nil
}

func toEntries(list []catalogdto.KanaOutput) []practiceout.Entry {
	out := make([]practiceout.Entry, 0, len(list))
	for _, k := range list {
		out = append(out, practiceout.Entry{Glyph: k.Glyph, Romaji: k.Romaji, Row: k.Row})
	}
	return out
}
