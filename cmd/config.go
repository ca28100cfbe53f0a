package cmd

import (
	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/spf13/cobra"
)

type configView struct {
	ConfigFile     string                `json:"configFile,omitempty"`
	Infinity       domain.InfinityConfig `json:"infinity"`
	StorePath      string                `json:"storePath"`
	RecordsPath    string                `json:"recordsPath"`
	SignaturesPath string                `json:"signaturesPath"`
}

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			coordinator, err := app.wireCoordinator(cmd.Context())
			if err != nil {
				return err
			}
			cfg := app.config

			view := configView{
				ConfigFile: cfg.ConfigFileUsed(),
				Infinity:   coordinator.InfinityConfig(cmd.Context()),
			}
			if view.StorePath, err = cfg.StorePath(); err != nil {
				return err
			}
			if view.RecordsPath, err = cfg.RecordsPath(); err != nil {
				return err
			}
			if view.SignaturesPath, err = cfg.SignaturesPath(); err != nil {
				return err
			}

			return writeJSON(cmd, view)
		}),
	})

	return cmd
}
