package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// newConfigCommand выводит действующие настройки в формате TOML
func newConfigCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := toml.Marshal(app.Config.AllSettings())
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			if path := app.Config.ConfigFileUsed(); path != "" {
				fmt.Fprintf(app.IO.Out, "# %s\n", path)
			}
			_, err = app.IO.Out.Write(data)
			return err
		},
	}
}
