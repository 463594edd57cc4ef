package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a lesson from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportLesson(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported lesson %q (%s) with %d content items\n",
				result.Lesson.Title, result.Lesson.ID, result.ContentCount)
			if result.HasLive {
				fmt.Println("Live session reference attached.")
			}
			return nil
		},
	}
}
