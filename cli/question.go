// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

var (
	recentLabel    = color.New(color.FgGreen, color.Bold)
	scheduledLabel = color.New(color.FgYellow)
)

// QuestionCmd groups the question management commands
func QuestionCmd(cfg *cliparse.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Create and list questions",
	}

	cmd.AddCommand(questionCreateCmd(cfg))
	cmd.AddCommand(questionListCmd(cfg))

	return cmd
}

func questionCreateCmd(cfg *cliparse.Config) *cobra.Command {
	var text string
	var days int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a question published a number of days from now",
		Long: `Create a question whose pub_date is now plus --days days.
Use a negative offset for a question that is already published and a positive
one to schedule it for the future.`,
		Example: `  polls question create --text "What's up?"
  polls question create --text "Coming soon" --days 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, conn, err := openStore(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			now := time.Now()
			q, err := st.Create(cmd.Context(), text, now.Add(time.Duration(days)*24*time.Hour))
			if err != nil {
				return fmt.Errorf("failed to create question: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created question %d: %s (%s)\n",
				q.ID, q.QuestionText, publication(q, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Question text (required, max 200 characters)")
	cmd.Flags().IntVar(&days, "days", 0, "Publication offset in days from now")
	cmd.MarkFlagRequired("text")

	return cmd
}

func questionListCmd(cfg *cliparse.Config) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published questions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, conn, err := openStore(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			now := time.Now()
			query := store.Published(now)
			if all {
				query = store.QuestionQuery{Order: store.NewestFirst}
			}

			questions, err := st.Find(cmd.Context(), query)
			if err != nil {
				return err
			}

			printQuestions(cmd.OutOrStdout(), questions, now)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include questions scheduled for the future")

	return cmd
}

func printQuestions(w io.Writer, questions []models.Question, now time.Time) {
	if len(questions) == 0 {
		fmt.Fprintln(w, "No polls available.")
		return
	}

	for _, q := range questions {
		fmt.Fprintf(w, "%4d  %s  (%s)", q.ID, q.QuestionText, publication(q, now))
		switch {
		case q.WasPublishedRecently(now):
			recentLabel.Fprint(w, "  new")
		case !q.IsPublished(now):
			scheduledLabel.Fprint(w, "  scheduled")
		}
		fmt.Fprintln(w)
	}
}

// publication describes when q goes or went live relative to now
func publication(q models.Question, now time.Time) string {
	rel := humanize.RelTime(q.PubDate, now, "ago", "from now")
	if q.IsPublished(now) {
		return "published " + rel
	}
	return "publishes " + rel
}
