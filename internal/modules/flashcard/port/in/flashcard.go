package in

import (
	"context"

	"gojuon/internal/modules/flashcard/dto"
)

type Usecase interface {
	Load(ctx context.Context, input dto.LoadInput) (dto.CardOutput, error)
	Current(ctx context.Context) (dto.CardOutput, error)
	Flip(ctx context.Context) (dto.CardOutput, error)
	Next(ctx context.Context) (dto.CardOutput, error)
	Prev(ctx context.Context) (dto.CardOutput, error)
	Shuffle(ctx context.Context) (dto.CardOutput, error)
	MarkEasy(ctx context.Context) (dto.MarkOutput, error)
	MarkDifficult(ctx context.Context) (dto.MarkOutput, error)
}
