package out

import (
	"context"

	catalogdomain "gojuon/internal/modules/catalog/domain"
	catalogdto "gojuon/internal/modules/catalog/dto"
	catalogin "gojuon/internal/modules/catalog/port/in"
	progressout "gojuon/internal/modules/progress/port/out"
)

// CatalogIndexAdapter answers glyph-list queries by delegating to the
// catalog module. Archaic kana stay out of the totals.
type CatalogIndexAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogIndexAdapter(catalog catalogin.Usecase) progressout.KanaIndex {
	return &CatalogIndexAdapter{catalog: catalog}
}

func (a *CatalogIndexAdapter) Glyphs(ctx context.Context, script string) ([]string, error) {
	entries, err := a.catalog.List(ctx, catalogdto.ListInput{Script: script})
	if err != nil {
		return nil, err
	}
	glyphs := make([]string, 0, len(entries))
	for _, e := range entries {
		glyphs = append(glyphs, e.Glyph)
	}
	return glyphs, nil
}

func (a *CatalogIndexAdapter) RowGlyphs(ctx context.Context, script string) ([]progressout.RowGlyphs, error) {
	entries, err := a.catalog.List(ctx, catalogdto.ListInput{Script: script})
	if err != nil {
		return nil, err
	}
	var rows []progressout.RowGlyphs
	index := map[string]int{}
	for _, e := range entries {
		at, ok := index[e.Row]
		if !ok {
			at = len(rows)
			index[e.Row] = at
			title := catalogdomain.RowTitles[e.Row]
			if title == "" {
				title = e.Row
			}
			rows = append(rows, progressout.RowGlyphs{Row: e.Row, Title: title})
		}
		rows[at].Glyphs = append(rows[at].Glyphs, e.Glyph)
	}
	return rows, nil
}
