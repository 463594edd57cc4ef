package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft lessons and quizzes from a description (requires DARASA_AI_ENABLED)",
	}

	cmd.AddCommand(
		newDraftLessonCmd(app),
		newDraftQuizCmd(app),
	)

	return cmd
}

func requireDraft(app *App) error {
	if app.Draft == nil {
		return fmt.Errorf("draft generation is disabled; set DARASA_AI_ENABLED=true and run a local Ollama server")
	}
	return nil
}

func newDraftLessonCmd(app *App) *cobra.Command {
	var out string
	var importNow bool

	cmd := &cobra.Command{
		Use:   "lesson <description>...",
		Short: "Draft an importable lesson schema from a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDraft(app); err != nil {
				return err
			}
			ctx := context.Background()

			schema, err := app.Draft.DraftLesson(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			if importNow {
				result, err := app.Import.ImportLessonFromSchema(ctx, schema)
				if err != nil {
					return err
				}
				fmt.Printf("Imported drafted lesson %q (%s) with %d content items\n",
					result.Lesson.Title, result.Lesson.ID, result.ContentCount)
				return nil
			}

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding draft: %w", err)
			}
			if out != "" {
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("writing draft file: %w", err)
				}
				fmt.Printf("Draft written to %s\n", out)
				return nil
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the draft schema to a file instead of stdout")
	cmd.Flags().BoolVar(&importNow, "import", false, "Import the draft immediately")

	return cmd
}

func newDraftQuizCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz <topic>...",
		Short: "Draft a checkpoint quiz definition for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDraft(app); err != nil {
				return err
			}

			def, err := app.Draft.DraftQuiz(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(def, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding quiz: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
