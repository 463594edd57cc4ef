package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/darasahq/darasa/internal/cli/formatter"
	"github.com/darasahq/darasa/internal/domain"
	"github.com/spf13/cobra"
)

// resolveLessonID accepts a full UUID or a unique prefix.
func resolveLessonID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("lesson ID is required")
	}

	lessons, err := app.Lessons.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, l := range lessons {
		if l.ID == input {
			return l.ID, nil
		}
	}

	var matches []string
	for _, l := range lessons {
		if strings.HasPrefix(l.ID, input) {
			matches = append(matches, l.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("lesson not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("lesson ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newLessonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Manage lessons",
	}

	cmd.AddCommand(
		newLessonAddCmd(app),
		newLessonListCmd(app),
		newLessonInspectCmd(app),
		newLessonPublishCmd(app),
		newLessonArchiveCmd(app),
		newLessonRemoveCmd(app),
		newContentCmd(app),
	)

	return cmd
}

func newLessonAddCmd(app *App) *cobra.Command {
	var title, subject, description, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new draft lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := &domain.Lesson{
				Title:       title,
				Subject:     subject,
				Description: description,
				Status:      domain.LessonDraft,
			}

			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid lesson date %q: %w", date, err)
				}
				l.LessonDate = &d
			}

			if err := app.Lessons.Create(context.Background(), l); err != nil {
				return err
			}

			fmt.Printf("Created lesson %q (%s)\n", l.Title, l.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Lesson title")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject area")
	cmd.Flags().StringVar(&description, "description", "", "Lesson description")
	cmd.Flags().StringVar(&date, "date", "", "Scheduled date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newLessonListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := app.Lessons.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(lessons) == 0 {
				fmt.Println("No lessons found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatLessonList(lessons))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived lessons")

	return cmd
}

func newLessonInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <lesson-id>",
		Short: "Show a lesson and its content items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}

			l, err := app.Lessons.GetByID(ctx, id)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatLessonDetail(l))
			return nil
		},
	}
}

func newLessonPublishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <lesson-id>",
		Short: "Publish a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Lessons.Publish(ctx, id); err != nil {
				return err
			}
			fmt.Println("Lesson published.")
			return nil
		},
	}
}

func newLessonArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <lesson-id>",
		Short: "Archive a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Lessons.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Lesson archived.")
			return nil
		},
	}
}

func newLessonRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <lesson-id>",
		Short: "Delete a lesson and its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Lessons.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Lesson removed.")
			return nil
		},
	}
}

func newContentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage content items within a lesson",
	}

	cmd.AddCommand(
		newContentAddCmd(app),
		newContentPublishCmd(app, true),
		newContentPublishCmd(app, false),
		newContentReorderCmd(app),
		newContentRemoveCmd(app),
	)

	return cmd
}

func newContentAddCmd(app *App) *cobra.Command {
	var lessonID, title, ctype, description, url string
	var minutes int
	var unpublished bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a content item to a lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, lessonID)
			if err != nil {
				return err
			}

			upper := strings.ToUpper(ctype)
			if !domain.ValidContentTypes[upper] {
				return fmt.Errorf("unknown content type %q", ctype)
			}

			item := &domain.ContentItem{
				LessonID:         id,
				ContentType:      domain.ContentType(upper),
				Title:            title,
				Description:      description,
				URL:              url,
				EstimatedMinutes: minutes,
				IsPublished:      !unpublished,
			}
			if err := app.Lessons.AddContent(ctx, item); err != nil {
				return err
			}

			fmt.Printf("Added %s item %q at position %d\n", item.ContentType, item.Title, item.SequenceOrder)
			return nil
		},
	}

	cmd.Flags().StringVar(&lessonID, "lesson", "", "Lesson ID")
	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&ctype, "type", "", "Content type (VIDEO, TEXT, QUIZ, CHECKPOINT, ...)")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	cmd.Flags().StringVar(&url, "url", "", "Resource URL")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Estimated minutes")
	cmd.Flags().BoolVar(&unpublished, "unpublished", false, "Create the item hidden from learners")
	_ = cmd.MarkFlagRequired("lesson")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newContentPublishCmd(app *App, publish bool) *cobra.Command {
	use, short := "publish <content-id>", "Make a content item visible to learners"
	if !publish {
		use, short = "unpublish <content-id>", "Hide a content item from learners"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Lessons.SetContentPublished(context.Background(), args[0], publish); err != nil {
				return err
			}
			if publish {
				fmt.Println("Content published.")
			} else {
				fmt.Println("Content unpublished.")
			}
			return nil
		},
	}
}

func newContentReorderCmd(app *App) *cobra.Command {
	var lessonID string

	cmd := &cobra.Command{
		Use:   "reorder <content-id>...",
		Short: "Reorder content items; listed ids become positions 1..n",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, app, lessonID)
			if err != nil {
				return err
			}
			if err := app.Lessons.ReorderContent(ctx, id, args); err != nil {
				return err
			}
			fmt.Println("Content reordered.")
			return nil
		},
	}

	cmd.Flags().StringVar(&lessonID, "lesson", "", "Lesson ID")
	_ = cmd.MarkFlagRequired("lesson")

	return cmd
}

func newContentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <content-id>",
		Short: "Delete a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Lessons.DeleteContent(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Content removed.")
			return nil
		},
	}
}
