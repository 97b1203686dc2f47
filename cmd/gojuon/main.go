package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gojuon/internal/bootstrap"
	"gojuon/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "gojuon",
		Short:         "Japanese kana trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.gojuon)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newKanaCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	root.AddCommand(newQuizCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newImportCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	root.AddCommand(newSettingsCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the gojuon terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newKanaCmd(dataDir *string) *cobra.Command {
	kana := &cobra.Command{Use: "kana", Short: "Kana catalog queries"}

	var script string
	var archaic bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List kana for a script",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			entries, err := app.CatalogCLI.List(context.Background(), script, archaic)
			if err != nil {
				return err
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.Glyph, e.Romaji, e.Row)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&script, "script", "hiragana", "script: hiragana|katakana")
	listCmd.Flags().BoolVar(&archaic, "archaic", false, "include archaic kana")

	var lookupScript string
	lookupCmd := &cobra.Command{
		Use:   "lookup <glyph>",
		Short: "Look up a single kana",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			e, err := app.CatalogCLI.Lookup(context.Background(), args[0], lookupScript)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\trow=%s\tdifficulty=%d\n", e.Glyph, e.Romaji, e.Row, e.Difficulty)
			return nil
		},
	}
	lookupCmd.Flags().StringVar(&lookupScript, "script", "", "script hint: hiragana|katakana")

	var rowScript string
	rowCmd := &cobra.Command{
		Use:   "row <row>",
		Short: "List the kana of one gojuon row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			entries, err := app.CatalogCLI.ByRow(context.Background(), args[0], rowScript)
			if err != nil {
				return err
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Glyph, e.Romaji)
			}
			return nil
		},
	}
	rowCmd.Flags().StringVar(&rowScript, "script", "hiragana", "script: hiragana|katakana")

	kana.AddCommand(listCmd, lookupCmd, rowCmd)
	return kana
}

func newProgressCmd(dataDir *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Progress and achievements"}

	progress.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the learning overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			o, err := app.ProgressCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "level %d (%s), %d points\n", o.Level, o.LevelTitle, o.Points)
			_, _ = fmt.Fprintf(out, "accuracy %d%% over %d answers\n", o.Accuracy, o.TotalQuestions)
			_, _ = fmt.Fprintf(out, "mastered %d/%d kana (%d%%), %d learning\n",
				o.MasteredTotal, o.KanaTotal, o.OverallPercent, o.LearningTotal)
			_, _ = fmt.Fprintf(out, "study: %d min over %d days (streak %d)\n",
				o.StudyMinutes, o.StudyDays, o.StudyDayStreak)
			_, _ = fmt.Fprintf(out, "achievements: %d/%d\n", o.UnlockedCount, o.AchievementCount)
			return nil
		},
	})

	var rowScript string
	rowsCmd := &cobra.Command{
		Use:   "rows",
		Short: "Show per-row mastery",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			rows, err := app.ProgressCLI.RowProgress(context.Background(), rowScript)
			if err != nil {
				return err
			}
			for _, r := range rows {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d/%d mastered\t%d%%\n", r.Title, r.Mastered, r.Total, r.Percent)
			}
			return nil
		},
	}
	rowsCmd.Flags().StringVar(&rowScript, "script", "hiragana", "script: hiragana|katakana")
	progress.AddCommand(rowsCmd)

	progress.AddCommand(&cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			list, err := app.ProgressCLI.Achievements(context.Background())
			if err != nil {
				return err
			}
			for _, a := range list {
				mark := " "
				if a.Unlocked {
					mark = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s — %s\n", mark, a.Name, a.Description)
			}
			return nil
		},
	})

	var yes bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all learning progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("pass --yes to confirm erasing all progress")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.ProgressCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress reset")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	progress.AddCommand(resetCmd)

	return progress
}

func newQuizCmd(dataDir *string) *cobra.Command {
	quiz := &cobra.Command{Use: "quiz", Short: "Quiz history"}

	var limit int
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent quiz results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			recs, err := app.ProgressCLI.QuizHistory(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no quizzes yet")
				return nil
			}
			for _, r := range recs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d/%d\t%d%%\t+%d pts\n",
					r.FinishedAt.Format("2006-01-02 15:04"), r.Script, r.Correct, r.Total, r.Accuracy, r.Points)
			}
			return nil
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", 10, "number of quizzes to show")
	quiz.AddCommand(historyCmd)

	return quiz
}

func newExportCmd(dataDir *string) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export progress to a JSON snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ProgressCLI.Export(context.Background(), dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}

func newImportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <snapshot.json>",
		Short: "Import a progress snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.ProgressCLI.Import(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", args[0])
			return nil
		},
	}
}

func newReportCmd(dataDir *string) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown progress report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ProgressCLI.Report(context.Background(), dir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report %s\n", out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "View or change settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			s, err := app.ProgressCLI.Settings(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "script: %s\nquiz questions: %d\n", s.DefaultScript, s.QuizQuestionCount)
			return nil
		},
	})

	var script string
	var questions int
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			cur, err := app.ProgressCLI.Settings(ctx)
			if err != nil {
				return err
			}
			if script == "" {
				script = cur.DefaultScript
			}
			if questions == 0 {
				questions = cur.QuizQuestionCount
			}
			s, err := app.ProgressCLI.UpdateSettings(ctx, script, questions)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "script: %s\nquiz questions: %d\n", s.DefaultScript, s.QuizQuestionCount)
			return nil
		},
	}
	setCmd.Flags().StringVar(&script, "script", "", "default script: hiragana|katakana")
	setCmd.Flags().IntVar(&questions, "questions", 0, "quiz question count")
	settings.AddCommand(setCmd)

	return settings
}
