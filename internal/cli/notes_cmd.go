package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/darasahq/darasa/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage your private lesson notes",
	}

	cmd.AddCommand(
		newNotesShowCmd(app),
		newNotesSaveCmd(app),
		newNotesClearCmd(app),
	)

	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <lesson-id>",
		Short: "Print the note for a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}

			text, err := app.Notes.Load(ctx, id)
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Println(formatter.Dim("No note for this lesson."))
				return nil
			}
			fmt.Println(text)
			return nil
		},
	}
}

func newNotesSaveCmd(app *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "save <lesson-id>",
		Short: "Save the note for a lesson (from --text or stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading note from stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\n")
			}

			savedAt, err := app.Notes.Save(ctx, id, text)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSavedAt(savedAt))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Note text; omit to read from stdin")

	return cmd
}

func newNotesClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear <lesson-id>",
		Short: "Delete the note for a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}

			confirmed := force
			if !confirmed {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("refusing to clear note without --force in a non-interactive terminal")
				}
				prompt := huh.NewConfirm().
					Title("Delete this note?").
					Description("The note text cannot be recovered.").
					Value(&confirmed)
				if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Canceled.")
					return nil
				}
			}

			if err := app.Notes.Clear(ctx, id, confirmed); err != nil {
				return err
			}
			fmt.Println("Note cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
