package head

import (
	"fmt"

	"github.com/spf13/cobra"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// NewCommand создаёт команду head
func NewCommand(app *cli.App) *cobra.Command {
	var (
		cfg   Config
		lines string
		bytes string
	)
	cmd := &cobra.Command{
		Use:   "head [FILE]...",
		Short: "Print the first lines of each file",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := ParsePositiveInt(lines)
			if err != nil {
				return fmt.Errorf("illegal line count -- %v", err)
			}
			cfg.Lines = n
			if bytes != "" {
				n, err := ParsePositiveInt(bytes)
				if err != nil {
					return fmt.Errorf("illegal byte count -- %v", err)
				}
				cfg.Bytes = n
			}

			cfg.Files = args
			if len(cfg.Files) == 0 {
				cfg.Files = []string{textio.Stdin}
			}
			return Run(app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&lines, "lines", "n", "10", "number of lines")
	flags.StringVarP(&bytes, "bytes", "c", "", "number of bytes")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "never print headers giving file names")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "always print headers giving file names")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
	return cmd
}
