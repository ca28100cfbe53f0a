package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/spf13/cobra"
)

func newSignaturesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signatures",
		Short: "Manage the known failure signature catalog",
	}

	cmd.AddCommand(
		newSignaturesListCmd(app),
		newSignaturesAddCmd(app),
	)

	return cmd
}

func newSignaturesListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known failure signatures",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.openCatalog()
			if err != nil {
				return err
			}

			signatures, err := catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, signatures)
			}

			for _, sig := range signatures {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sig.Name, strings.Join(sig.Keywords, ","))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newSignaturesAddCmd(app *app) *cobra.Command {
	var sig domain.Signature

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace a failure signature",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.openCatalog()
			if err != nil {
				return err
			}

			if err := catalog.Save(cmd.Context(), sig); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved signature %s to %s\n", strings.TrimSpace(sig.Name), catalog.Path())
			return err
		}),
	}

	cmd.Flags().StringVar(&sig.Name, "name", "", "Signature name")
	cmd.Flags().StringSliceVar(&sig.Keywords, "keywords", nil, "Keywords that identify the pattern")
	cmd.Flags().StringVar(&sig.Description, "description", "", "What goes wrong")
	cmd.Flags().StringVar(&sig.Recommendation, "recommendation", "", "What to do instead")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("keywords")

	return cmd
}
