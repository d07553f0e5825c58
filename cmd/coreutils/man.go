package main

import (
	"io"

	"github.com/spf13/cobra"

	"coreutils/internal/cli"
	"coreutils/internal/manual"
)

const manWidth = 80

// newManCommand показывает страницу справки утилиты
func newManCommand(app *cli.App) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:       "man TOOL",
		Short:     "Show the manual page of a tool",
		Args:      cobra.ExactArgs(1),
		ValidArgs: manual.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := manual.Page(args[0])
			if err != nil {
				return err
			}
			if !raw {
				if page, err = manual.Render(page, app.UseColor(), manWidth); err != nil {
					return err
				}
			}
			_, err = io.WriteString(app.IO.Out, page)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown source")
	return cmd
}
