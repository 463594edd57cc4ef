package cli

import (
	"github.com/darasahq/darasa/internal/genai"
	"github.com/darasahq/darasa/internal/notes"
	"github.com/darasahq/darasa/internal/progress"
	"github.com/darasahq/darasa/internal/repository"
	"github.com/darasahq/darasa/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and stores used by CLI commands.
type App struct {
	Lessons service.LessonService
	Import  service.ImportService

	LessonRepo repository.LessonRepo
	LiveRepo   repository.LiveSessionRepo
	Store      *progress.Store
	Notes      *notes.Sidecar

	// Draft is nil when generation is disabled.
	Draft genai.DraftService

	// IsInteractive reports whether stdin is a terminal. The study TUI
	// and confirmation prompts require an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "darasa" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "darasa",
		Short: "Lesson catalogue and study session runner",
	}

	root.AddCommand(
		newLessonCmd(app),
		newImportCmd(app),
		newNotesCmd(app),
		newDraftCmd(app),
		newStudyCmd(app),
	)

	return root
}
