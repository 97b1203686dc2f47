package domain_test

import (
	"testing"
	"time"

	"gojuon/internal/modules/progress/domain"
)

func TestRecordAttemptPromotesAtThreshold(t *testing.T) {
	t.Parallel()
	book := domain.NewMasteryBook()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 1; i < domain.MasteryThreshold; i++ {
		delta := book.RecordAttempt("あ", "あ", true, now)
		if delta.To != domain.Learning {
			t.Fatalf("after %d correct answers: status = %s, want learning", i, delta.To)
		}
	}
	delta := book.RecordAttempt("あ", "あ", true, now)
	if delta.From != domain.Learning || delta.To != domain.Mastered {
		t.Fatalf("third correct answer: %s -> %s, want learning -> mastered", delta.From, delta.To)
	}
	if got := book.StatusOf("あ"); got != domain.Mastered {
		t.Fatalf("StatusOf = %s, want mastered", got)
	}
}

func TestRecordAttemptWrongResetsAndDemotes(t *testing.T) {
	t.Parallel()
	book := domain.NewMasteryBook()
	now := time.Now()

	for i := 0; i < domain.MasteryThreshold; i++ {
		book.RecordAttempt("か", "か", true, now)
	}
	delta := book.RecordAttempt("か", "か", false, now)
	if delta.From != domain.Mastered || delta.To != domain.Learning {
		t.Fatalf("wrong answer on mastered: %s -> %s, want mastered -> learning", delta.From, delta.To)
	}
	if book.Stats["か"].ConsecutiveCorrect != 0 {
		t.Fatalf("streak = %d, want 0", book.Stats["か"].ConsecutiveCorrect)
	}

	// a wrong answer never drops a record back to unseen
	delta = book.RecordAttempt("か", "か", false, now)
	if delta.To != domain.Learning {
		t.Fatalf("second wrong answer: status = %s, want learning", delta.To)
	}
}

func TestRecordAttemptSharedRecordLiteralMembership(t *testing.T) {
	t.Parallel()
	book := domain.NewMasteryBook()
	now := time.Now()

	// practicing the katakana form builds the streak on the shared
	// hiragana record, but only カ enters the mastered set
	for i := 0; i < domain.MasteryThreshold; i++ {
		book.RecordAttempt("か", "カ", true, now)
	}
	if got := book.StatusOf("カ"); got != domain.Mastered {
		t.Fatalf("StatusOf(カ) = %s, want mastered", got)
	}
	if got := book.StatusOf("か"); got != domain.Unseen {
		t.Fatalf("StatusOf(か) = %s, want unseen", got)
	}
	if book.Stats["か"].ConsecutiveCorrect != domain.MasteryThreshold {
		t.Fatalf("canonical streak = %d, want %d", book.Stats["か"].ConsecutiveCorrect, domain.MasteryThreshold)
	}

	// one more correct answer on the hiragana form rides the shared streak
	delta := book.RecordAttempt("か", "か", true, now)
	if delta.From != domain.Unseen || delta.To != domain.Mastered {
		t.Fatalf("hiragana form after shared streak: %s -> %s, want unseen -> mastered", delta.From, delta.To)
	}
}

func TestTouchOnlyAffectsUnseen(t *testing.T) {
	t.Parallel()
	book := domain.NewMasteryBook()
	now := time.Now()

	if !book.Touch("さ") {
		t.Fatal("Touch on unseen kana should report a change")
	}
	if got := book.StatusOf("さ"); got != domain.Learning {
		t.Fatalf("StatusOf = %s, want learning", got)
	}
	if book.Touch("さ") {
		t.Fatal("Touch on learning kana should be a no-op")
	}

	book.ForceMastered("た", "た", now)
	if book.Touch("た") {
		t.Fatal("Touch on mastered kana should be a no-op")
	}
}

func TestForceMasteredThenWrongDemotes(t *testing.T) {
	t.Parallel()
	book := domain.NewMasteryBook()
	now := time.Now()

	delta := book.ForceMastered("な", "な", now)
	if delta.To != domain.Mastered {
		t.Fatalf("ForceMastered: status = %s, want mastered", delta.To)
	}
	if book.Stats["な"].ConsecutiveCorrect != domain.MasteryThreshold {
		t.Fatalf("streak = %d, want %d", book.Stats["な"].ConsecutiveCorrect, domain.MasteryThreshold)
	}

	delta = book.RecordAttempt("な", "な", false, now)
	if delta.From != domain.Mastered || delta.To != domain.Learning {
		t.Fatalf("wrong after force: %s -> %s, want mastered -> learning", delta.From, delta.To)
	}
}

func TestMasteredCountByLiteralGlyph(t *testing.T) {
	t.Parallel()
	book := domain.NewMasteryBook()
	now := time.Now()

	book.ForceMastered("あ", "あ", now)
	book.ForceMastered("か", "カ", now)

	hiragana := []string{"あ", "か", "さ"}
	katakana := []string{"ア", "カ", "サ"}
	if got := book.MasteredCount(hiragana); got != 1 {
		t.Fatalf("hiragana mastered = %d, want 1", got)
	}
	if got := book.MasteredCount(katakana); got != 1 {
		t.Fatalf("katakana mastered = %d, want 1", got)
	}
}
