package uniq

import (
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// NewCommand создаёт команду uniq
func NewCommand(app *cli.App) *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   "uniq [IN_FILE [OUT_FILE]]",
		Short: "Report or omit repeated lines",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InFile = textio.Stdin
			if len(args) > 0 {
				cfg.InFile = args[0]
			}
			if len(args) > 1 {
				cfg.OutFile = args[1]
			}
			return Run(app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.Count, "count", "c", false, "prefix lines by the number of occurrences")
	flags.BoolVarP(&cfg.Repeated, "repeated", "d", false, "only print duplicate lines, one for each group")
	flags.BoolVarP(&cfg.Unique, "unique", "u", false, "only print unique lines")
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "ignore differences in case when comparing")
	cmd.MarkFlagsMutuallyExclusive("repeated", "unique")
	return cmd
}
