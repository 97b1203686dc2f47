package in

import (
	"context"

	"gojuon/internal/modules/quiz/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	Answer(ctx context.Context, input dto.AnswerInput) (dto.StateOutput, error)
	// Tick advances the countdown for the given generation; a stale
	// generation is a no-op returning the current state.
	Tick(ctx context.Context, generation int) (dto.StateOutput, error)
	Stop(ctx context.Context) error
	State(ctx context.Context) (dto.StateOutput, error)
}
