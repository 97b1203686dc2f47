package in

import (
	"context"

	"gojuon/internal/modules/practice/dto"
)

type Usecase interface {
	Next(ctx context.Context, input dto.NextInput) (dto.QuestionOutput, error)
	Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error)
	Current(ctx context.Context) (dto.QuestionOutput, error)
	Clear(ctx context.Context) error
}
