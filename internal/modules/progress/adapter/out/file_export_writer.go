package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gojuon/internal/modules/progress/domain"
	progressout "gojuon/internal/modules/progress/port/out"
	"gojuon/internal/platform/markdown"
)

// FileExportWriter renders snapshot exports and progress reports into a
// target directory and reads snapshots back for import.
type FileExportWriter struct{}

func NewFileExportWriter() progressout.ExportWriter {
	return &FileExportWriter{}
}

func (w *FileExportWriter) WriteSnapshot(_ context.Context, snap domain.Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	name := fmt.Sprintf("gojuon-progress-%s.json", snap.ExportedAt.Format("20060102-150405"))
	path := filepath.Join(dir, name)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

func (w *FileExportWriter) ReadSnapshot(_ context.Context, path string) (domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

const (
	reportManagedStart = "<!-- gojuon:report:start -->"
	reportManagedEnd   = "<!-- gojuon:report:end -->"
)

func (w *FileExportWriter) WriteReport(_ context.Context, report progressout.Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	name := fmt.Sprintf("gojuon-report-%s.md", strings.ReplaceAll(report.GeneratedAt[:10], "-", ""))
	path := filepath.Join(dir, name)

	// Regenerating the same day's report only rewrites the managed block,
	// so notes added around it survive.
	body := ""
	if existing, err := os.ReadFile(path); err == nil {
		if _, prevBody, splitErr := markdown.SplitFrontmatter(string(existing)); splitErr == nil {
			body = prevBody
		}
	}
	body = markdown.ReplaceManagedBlock(body, reportManagedStart, reportManagedEnd, reportBody(report))

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"generated_at":   report.GeneratedAt,
		"level":          report.Level,
		"points":         report.Points,
		"accuracy":       report.Accuracy,
	}
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func reportBody(report progressout.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Kana Progress Report\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", report.GeneratedAt)

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- Level: %d (%s)\n", report.Level, report.LevelTitle)
	fmt.Fprintf(&b, "- Points: %d\n", report.Points)
	fmt.Fprintf(&b, "- Accuracy: %d%%\n", report.Accuracy)
	fmt.Fprintf(&b, "- Kana mastered: %d of %d (%d%%)\n", report.MasteredCount, report.KanaTotal, report.OverallPct)
	fmt.Fprintf(&b, "- Kana in progress: %d\n", report.LearningCount)
	fmt.Fprintf(&b, "- Study days: %d (streak %d)\n", report.StudyDays, report.StudyStreak)
	fmt.Fprintf(&b, "- Study hours: %d\n", report.StudyHours)
	fmt.Fprintf(&b, "- Best answer streak: %d\n", report.MaxStreak)
	fmt.Fprintf(&b, "- Perfect quizzes: %d\n", report.PerfectCount)

	if len(report.Rows) > 0 {
		fmt.Fprintf(&b, "\n## Progress by row\n\n")
		fmt.Fprintf(&b, "| Row | Mastered | Learning | Total | %% |\n")
		fmt.Fprintf(&b, "|-----|----------|----------|-------|---|\n")
		for _, row := range report.Rows {
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %d |\n", row.Title, row.Mastered, row.Learning, row.Total, row.Percent)
		}
	}

	if len(report.Achievements) > 0 {
		fmt.Fprintf(&b, "\n## Achievements\n\n")
		for _, a := range report.Achievements {
			fmt.Fprintf(&b, "- **%s** %s\n", a.Name, a.Description)
		}
	}

	if len(report.TroubleKanas) > 0 {
		fmt.Fprintf(&b, "\n## Needs work\n\n")
		for _, t := range report.TroubleKanas {
			fmt.Fprintf(&b, "- %s (%d%% over %d attempts)\n", t.Glyph, t.Accuracy, t.Attempts)
		}
	}
	return b.String()
}
