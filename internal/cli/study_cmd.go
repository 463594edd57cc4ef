package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/darasahq/darasa/internal/session"
	"github.com/spf13/cobra"
)

func newStudyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "study <lesson-id>",
		Short: "Open a lesson in the interactive study view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("study requires an interactive terminal")
			}

			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}

			ctrl := session.NewController(id, app.LessonRepo, app.LiveRepo, app.Store, app.Notes, nil)
			defer ctrl.Close()

			model := newStudyModel(ctx, ctrl)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
