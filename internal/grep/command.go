package grep

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// NewCommand создаёт команду grep
func NewCommand(app *cli.App) *cobra.Command {
	var (
		cfg     Config
		context int
	)
	cmd := &cobra.Command{
		Use:   "grep PATTERN [FILE]...",
		Short: "Print lines that match a pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range []int{cfg.After, cfg.Before, context} {
				if n < 0 {
					return fmt.Errorf("%d: invalid context length argument", n)
				}
			}
			if context > 0 {
				cfg.After = context
				cfg.Before = context
			}

			cfg.Pattern = args[0]
			cfg.Files = args[1:]
			if len(cfg.Files) == 0 {
				cfg.Files = []string{textio.Stdin}
			}
			return Run(cmd.Context(), app, afero.NewOsFs(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.Count, "count", "c", false, "count matching lines")
	flags.BoolVarP(&cfg.Ignore, "insensitive", "i", false, "case-insensitive match")
	flags.BoolVarP(&cfg.Invert, "invert-match", "v", false, "select non-matching lines")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "search directories recursively")
	flags.BoolVarP(&cfg.LineNumber, "line-number", "n", false, "prefix each line with its number")
	flags.BoolVarP(&cfg.Fixed, "fixed-strings", "F", false, "pattern is a plain string")
	flags.IntVarP(&cfg.After, "after-context", "A", 0, "lines of context after each match")
	flags.IntVarP(&cfg.Before, "before-context", "B", 0, "lines of context before each match")
	flags.IntVarP(&context, "context", "C", 0, "lines of context around each match")
	return cmd
}
