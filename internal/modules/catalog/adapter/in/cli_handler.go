package in

import (
	"context"

	"gojuon/internal/modules/catalog/dto"
	catalogin "gojuon/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, script string, includeArchaic bool) ([]dto.KanaOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Script: script, IncludeArchaic: includeArchaic})
}

func (h CLIHandler) Lookup(ctx context.Context, glyph, script string) (dto.KanaOutput, error) {
	return h.usecase.Lookup(ctx, dto.LookupInput{Glyph: glyph, Script: script})
}

func (h CLIHandler) ByRow(ctx context.Context, row, script string) ([]dto.KanaOutput, error) {
	return h.usecase.ByRow(ctx, dto.ByRowInput{Row: row, Script: script})
}

func (h CLIHandler) Correspond(ctx context.Context, glyph, from, to string) (dto.KanaOutput, error) {
	return h.usecase.Correspond(ctx, dto.CorrespondInput{Glyph: glyph, From: from, To: to})
}
