package in

import (
	"context"

	"gojuon/internal/modules/catalog/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.KanaOutput, error)
	Lookup(ctx context.Context, input dto.LookupInput) (dto.KanaOutput, error)
	ByRow(ctx context.Context, input dto.ByRowInput) ([]dto.KanaOutput, error)
	Sample(ctx context.Context, input dto.SampleInput) ([]dto.KanaOutput, error)
	Distractors(ctx context.Context, input dto.DistractorsInput) ([]dto.KanaOutput, error)
	Correspond(ctx context.Context, input dto.CorrespondInput) (dto.KanaOutput, error)
	Grid(ctx context.Context, script string) (dto.GridOutput, error)
}
