package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func newHistoryCmd(app *app) *cobra.Command {
	var (
		session string
		limit   int
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded partnerships, newest first",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return errors.New("--limit must be positive")
			}

			records, err := app.openRecords(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := records.History(cmd.Context(), domain.HistoryQuery{SessionID: session, Limit: limit})
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			if entries == nil {
				entries = []domain.HistoryEntry{}
			}

			if !pretty {
				return writeJSON(cmd, entries)
			}

			rendered, err := app.historyRenderer()(entries)
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		}),
	}

	cmd.Flags().StringVar(&session, "session", "", "Only show this session")
	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Maximum number of records")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render a terminal table instead of JSON")

	return cmd
}
