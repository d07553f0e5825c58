package cat

import (
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// NewCommand создаёт команду cat
func NewCommand(app *cli.App) *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   "cat [FILE]...",
		Short: "Concatenate files to standard output",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Files = args
			if len(cfg.Files) == 0 {
				cfg.Files = []string{textio.Stdin}
			}
			return Run(app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.Number, "number", "n", false, "number all output lines")
	flags.BoolVarP(&cfg.NumberNonblank, "number-nonblank", "b", false, "number non-blank output lines")
	flags.BoolVarP(&cfg.SqueezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	flags.BoolVarP(&cfg.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	cmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")
	return cmd
}
