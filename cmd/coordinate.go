package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/spf13/cobra"
)

var errCoordinationFailed = errors.New("coordination failed")

func newCoordinateCmd(app *app) *cobra.Command {
	var (
		input    missionFlags
		pretty   bool
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "coordinate",
		Short: "Run a plan through the partnership review",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			plan, mission, err := input.load(cmd)
			if err != nil {
				return err
			}

			coordinator, err := app.wireCoordinator(cmd.Context())
			if err != nil {
				return err
			}

			var outcome domain.Outcome
			work := func(ctx context.Context) error {
				outcome = coordinator.Coordinate(ctx, mission.Mesh, plan, mission)
				return nil
			}
			if progress {
				err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Coordinating partnership...", work)
			} else {
				err = work(cmd.Context())
			}
			if err != nil {
				return err
			}

			if pretty {
				rendered, err := app.outcomeRenderer()(outcome)
				if err != nil {
					return fmt.Errorf("render outcome: %w", err)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
					return err
				}
			} else if err := writeJSON(cmd, outcome); err != nil {
				return err
			}

			if !outcome.Success {
				return fmt.Errorf("%w: %s", errCoordinationFailed, outcome.Error)
			}
			return nil
		}),
	}

	input.bind(cmd)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render a terminal summary instead of JSON")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a spinner on stderr while the review runs")

	return cmd
}

func newConsensusCmd(app *app) *cobra.Command {
	var input missionFlags

	cmd := &cobra.Command{
		Use:   "consensus",
		Short: "Score how well a plan matches expected preferences",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			plan, mission, err := input.load(cmd)
			if err != nil {
				return err
			}

			coordinator, err := app.wireCoordinator(cmd.Context())
			if err != nil {
				return err
			}

			consensus, err := coordinator.Consensus(cmd.Context(), mission.Mesh, plan, mission)
			if err != nil {
				return err
			}

			return writeJSON(cmd, consensus)
		}),
	}

	input.bind(cmd)
	return cmd
}

func newDetectCmd(app *app) *cobra.Command {
	var input missionFlags

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Run only the error-pattern detectors and halt checkpoint",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			plan, mission, err := input.load(cmd)
			if err != nil {
				return err
			}

			coordinator, err := app.wireCoordinator(cmd.Context())
			if err != nil {
				return err
			}

			result, err := coordinator.Detect(cmd.Context(), mission.Mesh, plan, mission)
			if err != nil {
				return err
			}

			return writeJSON(cmd, result)
		}),
	}

	input.bind(cmd)
	return cmd
}
