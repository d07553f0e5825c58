package tail

import (
	"fmt"

	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// NewCommand создаёт команду tail
func NewCommand(app *cli.App) *cobra.Command {
	var (
		cfg   Config
		lines string
		bytes string
	)
	cmd := &cobra.Command{
		Use:   "tail FILE...",
		Short: "Print the last lines of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			take, err := ParseTakeNum(lines)
			if err != nil {
				return fmt.Errorf("illegal line count -- %v", err)
			}
			cfg.Lines = take
			if bytes != "" {
				take, err := ParseTakeNum(bytes)
				if err != nil {
					return fmt.Errorf("illegal byte count -- %v", err)
				}
				cfg.Bytes = &take
			}

			cfg.Files = args
			return Run(cmd.Context(), app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&lines, "lines", "n", "10", "number of lines")
	flags.StringVarP(&bytes, "bytes", "c", "", "number of bytes")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress headers")
	flags.BoolVarP(&cfg.Follow, "follow", "f", false, "output appended data as the file grows")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	return cmd
}
