package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darasahq/darasa/internal/cli"
	"github.com/darasahq/darasa/internal/db"
	"github.com/darasahq/darasa/internal/genai"
	"github.com/darasahq/darasa/internal/notes"
	"github.com/darasahq/darasa/internal/progress"
	"github.com/darasahq/darasa/internal/repository"
	"github.com/darasahq/darasa/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.darasa/darasa.db
	dbPath := os.Getenv("DARASA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".darasa", "darasa.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	lessonRepo := repository.NewSQLiteLessonRepo(database)
	contentRepo := repository.NewSQLiteContentRepo(database)
	liveRepo := repository.NewSQLiteLiveSessionRepo(database)
	kvRepo := repository.NewSQLiteKeyValueRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("DARASA_LOG_USE_CASES") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Lessons:    service.NewLessonService(lessonRepo, contentRepo, uow),
		Import:     service.NewImportService(uow, observers...),
		LessonRepo: lessonRepo,
		LiveRepo:   liveRepo,
		Store:      progress.NewStore(kvRepo),
		Notes:      notes.NewSidecar(kvRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Draft generation is opt-in and needs a local Ollama server.
	aiCfg := genai.LoadConfig()
	if aiCfg.Enabled {
		var observer genai.Observer = genai.NoopObserver{}
		if aiCfg.LogCalls {
			observer = genai.NewLogObserver(os.Stderr)
		}
		client := genai.NewOllamaClient(aiCfg, observer)
		app.Draft = genai.NewDraftService(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
