package usecase

import (
	"context"

	"gojuon/internal/modules/catalog/domain"
	"gojuon/internal/modules/catalog/dto"
	catalogin "gojuon/internal/modules/catalog/port/in"
	"gojuon/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(_ context.Context, input dto.ListInput) ([]dto.KanaOutput, error) {
	script, err := parseScript(input.Script)
	if err != nil {
		return nil, err
	}
	return toOutputs(i.svc.List(script, input.IncludeArchaic)), nil
}

func (i *Interactor) Lookup(_ context.Context, input dto.LookupInput) (dto.KanaOutput, error) {
	script, err := parseScript(input.Script)
	if err != nil {
		return dto.KanaOutput{}, err
	}
	entry, err := i.svc.Lookup(input.Glyph, script)
	if err != nil {
		return dto.KanaOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) ByRow(_ context.Context, input dto.ByRowInput) ([]dto.KanaOutput, error) {
	script, err := parseScript(input.Script)
	if err != nil {
		return nil, err
	}
	entries, err := i.svc.ByRow(input.Row, script)
	if err != nil {
		return nil, err
	}
	return toOutputs(entries), nil
}

func (i *Interactor) Sample(_ context.Context, input dto.SampleInput) ([]dto.KanaOutput, error) {
	script, err := parseScript(input.Script)
	if err != nil {
		return nil, err
	}
	return toOutputs(i.svc.Sample(input.Count, script, input.Row, input.IncludeArchaic)), nil
}

func (i *Interactor) Distractors(_ context.Context, input dto.DistractorsInput) ([]dto.KanaOutput, error) {
	script, err := parseScript(input.Script)
	if err != nil {
		return nil, err
	}
	target, err := i.svc.Lookup(input.Glyph, script)
	if err != nil {
		return nil, err
	}
	return toOutputs(i.svc.Distractors(target, script, input.Count)), nil
}

func (i *Interactor) Correspond(_ context.Context, input dto.CorrespondInput) (dto.KanaOutput, error) {
	from, err := parseScript(input.From)
	if err != nil {
		return dto.KanaOutput{}, err
	}
	to, err := parseScript(input.To)
	if err != nil {
		return dto.KanaOutput{}, err
	}
	entry, err := i.svc.Correspond(input.Glyph, from, to)
	if err != nil {
		return dto.KanaOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) Grid(_ context.Context, rawScript string) (dto.GridOutput, error) {
	script, err := parseScript(rawScript)
	if err != nil {
		return dto.GridOutput{}, err
	}
	rowTitles := make([]string, len(domain.Rows))
	for idx, row := range domain.Rows {
		rowTitles[idx] = domain.RowTitles[row]
	}
	return dto.GridOutput{
		Script:       string(script),
		RowTitles:    rowTitles,
		ColumnTitles: domain.ColumnTitles,
		Cells:        domain.Grid(script),
	}, nil
}

func parseScript(raw string) (domain.Script, error) {
	if raw == "" {
		return domain.Hiragana, nil
	}
	script := domain.Script(raw)
	if err := script.Validate(); err != nil {
		return "", err
	}
	return script, nil
}

func toOutput(e domain.KanaEntry) dto.KanaOutput {
	return dto.KanaOutput{
		Glyph:      e.Glyph,
		Romaji:     e.Romaji,
		Row:        e.Row,
		Difficulty: e.Difficulty,
		Archaic:    e.Archaic(),
	}
}

func toOutputs(entries []domain.KanaEntry) []dto.KanaOutput {
	out := make([]dto.KanaOutput, len(entries))
	for i, e := range entries {
		out[i] = toOutput(e)
	}
	return out
}
