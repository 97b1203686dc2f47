package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "gojuon/internal/modules/catalog/adapter/in"
	catalogin "gojuon/internal/modules/catalog/port/in"
	catalogservice "gojuon/internal/modules/catalog/service"
	catalogusecase "gojuon/internal/modules/catalog/usecase"
	flashcardoutadapter "gojuon/internal/modules/flashcard/adapter/out"
	flashcardin "gojuon/internal/modules/flashcard/port/in"
	flashcardservice "gojuon/internal/modules/flashcard/service"
	flashcardusecase "gojuon/internal/modules/flashcard/usecase"
	practiceoutadapter "gojuon/internal/modules/practice/adapter/out"
	practicein "gojuon/internal/modules/practice/port/in"
	practiceservice "gojuon/internal/modules/practice/service"
	practiceusecase "gojuon/internal/modules/practice/usecase"
	progressinadapter "gojuon/internal/modules/progress/adapter/in"
	progressoutadapter "gojuon/internal/modules/progress/adapter/out"
	progressin "gojuon/internal/modules/progress/port/in"
	progressservice "gojuon/internal/modules/progress/service"
	progressusecase "gojuon/internal/modules/progress/usecase"
	quizoutadapter "gojuon/internal/modules/quiz/adapter/out"
	quizin "gojuon/internal/modules/quiz/port/in"
	quizservice "gojuon/internal/modules/quiz/service"
	quizusecase "gojuon/internal/modules/quiz/usecase"
	"gojuon/internal/platform/clock"
	"gojuon/internal/platform/config"
	"gojuon/internal/platform/id"
	"gojuon/internal/platform/randsrc"
	uiapp "gojuon/internal/ui/app"
)

// App wires every module and exposes the handlers the CLI and TUI consume.
type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler

	catalog  catalogin.Usecase
	progress progressin.Usecase
	practice practicein.Usecase
	quiz     quizin.Usecase
	cards    flashcardin.Usecase

	closer func() error
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	rng := randsrc.NewMathRand()

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(rng))

	attemptLog, err := progressoutadapter.NewSQLiteAttemptLog(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open attempt log: %w", err)
	}
	index := progressoutadapter.NewCatalogIndexAdapter(catalogUC)
	progressSvc := progressservice.NewProgressService(clk,
		progressoutadapter.NewFileProfileStore(cfg.ProfilePath), index)
	if err := progressSvc.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	progressUC := progressusecase.NewInteractor(
		progressSvc,
		progressoutadapter.NewYAMLSettingsStore(cfg.SettingsPath),
		attemptLog,
		index,
		progressoutadapter.NewFileExportWriter(),
		ids,
		clk,
	)

	practiceUC := practiceusecase.NewInteractor(
		practiceservice.NewPracticeService(practiceoutadapter.NewCatalogAdapter(catalogUC), rng),
		practiceoutadapter.NewProgressAdapter(progressUC),
	)

	quizUC := quizusecase.NewInteractor(
		quizservice.NewQuizService(quizoutadapter.NewCatalogAdapter(catalogUC), rng, clk),
		quizoutadapter.NewProgressAdapter(progressUC),
	)

	cardsUC := flashcardusecase.NewInteractor(
		flashcardservice.NewFlashcardService(flashcardoutadapter.NewCatalogAdapter(catalogUC), rng),
		flashcardoutadapter.NewProgressAdapter(progressUC),
	)

	return &App{
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		catalog:     catalogUC,
		progress:    progressUC,
		practice:    practiceUC,
		quiz:        quizUC,
		cards:       cardsUC,
		closer:      attemptLog.Close,
	}, nil
}

// Close releases the attempt log's database handle.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

// RunTUI starts the full-screen terminal interface.
func RunTUI(app *App) error {
	model := uiapp.NewModel(app.catalog, app.practice, app.quiz, app.cards, app.progress)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
