package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gojuon/internal/modules/progress/domain"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteAttemptLog projects answer and quiz history into a local sqlite
// database for the dashboard and CLI queries.
type SQLiteAttemptLog struct {
	db *sql.DB
}

func NewSQLiteAttemptLog(dbPath string) (*SQLiteAttemptLog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	log := &SQLiteAttemptLog{db: db}
	if err := log.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return log, nil
}

func (l *SQLiteAttemptLog) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS attempts (
  glyph TEXT NOT NULL,
  mode TEXT NOT NULL,
  correct INTEGER NOT NULL,
  answered_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_glyph ON attempts(glyph);
CREATE TABLE IF NOT EXISTS quizzes (
  id TEXT PRIMARY KEY,
  script TEXT NOT NULL,
  total INTEGER NOT NULL,
  correct INTEGER NOT NULL,
  accuracy INTEGER NOT NULL,
  duration_secs INTEGER NOT NULL,
  points INTEGER NOT NULL,
  finished_at TEXT NOT NULL
);
`
	if _, err := l.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create history tables: %w", err)
	}
	return nil
}

func (l *SQLiteAttemptLog) AppendAttempt(ctx context.Context, rec domain.AttemptRecord) error {
	const stmt = `INSERT INTO attempts (glyph, mode, correct, answered_at) VALUES (?, ?, ?, ?)`
	correct := 0
	if rec.Correct {
		correct = 1
	}
	if _, err := l.db.ExecContext(ctx, stmt, rec.Glyph, rec.Mode, correct, rec.AnsweredAt.Format(timeLayout)); err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (l *SQLiteAttemptLog) AppendQuiz(ctx context.Context, rec domain.QuizRecord) error {
	const stmt = `
INSERT INTO quizzes (id, script, total, correct, accuracy, duration_secs, points, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := l.db.ExecContext(ctx, stmt,
		rec.ID, rec.Script, rec.Total, rec.Correct, rec.Accuracy, rec.DurationSecs, rec.Points,
		rec.FinishedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}
	return nil
}

func (l *SQLiteAttemptLog) RecentQuizzes(ctx context.Context, limit int) ([]domain.QuizRecord, error) {
	const query = `
SELECT id, script, total, correct, accuracy, duration_secs, points, finished_at
FROM quizzes ORDER BY finished_at DESC LIMIT ?`
	rows, err := l.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	var recs []domain.QuizRecord
	for rows.Next() {
		var rec domain.QuizRecord
		var finished string
		if err := rows.Scan(&rec.ID, &rec.Script, &rec.Total, &rec.Correct, &rec.Accuracy, &rec.DurationSecs, &rec.Points, &finished); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		rec.FinishedAt, _ = time.Parse(timeLayout, finished)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (l *SQLiteAttemptLog) GlyphAggregates(ctx context.Context, minAttempts, limit int) ([]domain.GlyphAggregate, error) {
	const query = `
SELECT glyph, COUNT(*) AS attempts, SUM(correct) AS correct
FROM attempts
GROUP BY glyph
HAVING attempts >= ?
ORDER BY CAST(correct AS REAL) / attempts ASC, attempts DESC
LIMIT ?`
	rows, err := l.db.QueryContext(ctx, query, minAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("query aggregates: %w", err)
	}
	defer rows.Close()

	var aggs []domain.GlyphAggregate
	for rows.Next() {
		var agg domain.GlyphAggregate
		if err := rows.Scan(&agg.Glyph, &agg.Attempts, &agg.Correct); err != nil {
			return nil, fmt.Errorf("scan aggregate: %w", err)
		}
		aggs = append(aggs, agg)
	}
	return aggs, rows.Err()
}

func (l *SQLiteAttemptLog) Reset(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	if _, err := l.db.ExecContext(ctx, `DELETE FROM quizzes`); err != nil {
		return fmt.Errorf("reset quizzes: %w", err)
	}
	return nil
}

func (l *SQLiteAttemptLog) Close() error { return l.db.Close() }
