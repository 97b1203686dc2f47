package usecase_test

import (
	"context"
	"errors"
	"testing"

	"gojuon/internal/modules/flashcard/dto"
	flashcardin "gojuon/internal/modules/flashcard/port/in"
	flashcardout "gojuon/internal/modules/flashcard/port/out"
	"gojuon/internal/modules/flashcard/service"
	"gojuon/internal/modules/flashcard/usecase"
	apperrors "gojuon/internal/platform/errors"
)

type stubCatalog struct{}

func (stubCatalog) Cards(context.Context, string) ([]flashcardout.Entry, error) {
	return []flashcardout.Entry{
		{Glyph: "カ", Canonical: "か", Romaji: "ka"},
		{Glyph: "キ", Canonical: "き", Romaji: "ki"},
	}, nil
}

type noShuffle struct{}

func (noShuffle) Intn(n int) int              { return 0 }
func (noShuffle) Shuffle(int, func(i, j int)) {}

type recordingProgress struct {
	canonical string
	literal   string
	easy      bool
}

func (r *recordingProgress) Mark(_ context.Context, canonical, literal string, easy bool) (flashcardout.MarkFact, error) {
	r.canonical, r.literal, r.easy = canonical, literal, easy
	status := "learning"
	points := 0
	if easy {
		status = "mastered"
		points = 5
	}
	return flashcardout.MarkFact{Status: status, Points: points}, nil
}

func newUsecase(progress *recordingProgress) flashcardin.Usecase {
	svc := service.NewFlashcardService(stubCatalog{}, noShuffle{})
	return usecase.NewInteractor(svc, progress)
}

func TestCurrentBeforeLoad(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&recordingProgress{})
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNoQuestion) {
		t.Fatalf("err = %v, want ErrNoQuestion", err)
	}
}

func TestMarkEasyRecordsAndAdvances(t *testing.T) {
	t.Parallel()
	progress := &recordingProgress{}
	uc := newUsecase(progress)
	ctx := context.Background()

	if _, err := uc.Load(ctx, dto.LoadInput{Script: "katakana"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	out, err := uc.MarkEasy(ctx)
	if err != nil {
		t.Fatalf("MarkEasy: %v", err)
	}
	if out.Status != "mastered" || out.Points != 5 {
		t.Fatalf("mark = %+v", out)
	}
	if progress.canonical != "か" || progress.literal != "カ" || !progress.easy {
		t.Fatalf("recorded %s/%s easy=%v, want か/カ true", progress.canonical, progress.literal, progress.easy)
	}

	card, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if card.Glyph != "キ" {
		t.Fatalf("current = %s, want キ after marking", card.Glyph)
	}
}

func TestMarkDifficultDemotes(t *testing.T) {
	t.Parallel()
	progress := &recordingProgress{}
	uc := newUsecase(progress)
	ctx := context.Background()

	if _, err := uc.Load(ctx, dto.LoadInput{Script: "katakana"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	out, err := uc.MarkDifficult(ctx)
	if err != nil {
		t.Fatalf("MarkDifficult: %v", err)
	}
	if out.Status != "learning" || out.Points != 0 || progress.easy {
		t.Fatalf("mark = %+v easy=%v", out, progress.easy)
	}
}

func TestFlipAndNavigate(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&recordingProgress{})
	ctx := context.Background()

	if _, err := uc.Load(ctx, dto.LoadInput{Script: "katakana"}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	card, err := uc.Flip(ctx)
	if err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if !card.Flipped || card.Romaji != "ka" {
		t.Fatalf("card = %+v, want flipped ka", card)
	}
	card, err = uc.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if card.Glyph != "キ" || card.Flipped {
		t.Fatalf("card = %+v, want キ front", card)
	}
	card, err = uc.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if card.Glyph != "カ" {
		t.Fatalf("card = %s, want wraparound to カ", card.Glyph)
	}
}
