package comm

import (
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// NewCommand создаёт команду comm
func NewCommand(app *cli.App) *cobra.Command {
	var (
		cfg                             Config
		suppress1, suppress2, suppress3 bool
	)
	cmd := &cobra.Command{
		Use:   "comm FILE1 FILE2",
		Short: "Compare two sorted files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.File1, cfg.File2 = args[0], args[1]
			cfg.ShowCol1 = !suppress1
			cfg.ShowCol2 = !suppress2
			cfg.ShowCol3 = !suppress3
			return Run(app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&suppress1, "suppress-1", "1", false, "suppress printing of column 1")
	flags.BoolVarP(&suppress2, "suppress-2", "2", false, "suppress printing of column 2")
	flags.BoolVarP(&suppress3, "suppress-3", "3", false, "suppress printing of column 3")
	flags.BoolVarP(&cfg.Insensitive, "insensitive", "i", false, "case-insensitive comparison of lines")
	flags.StringVarP(&cfg.Delimiter, "output-delimiter", "d", "\t", "output delimiter")
	return cmd
}
