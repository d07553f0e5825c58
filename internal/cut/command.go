package cut

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// NewCommand создаёт команду cut
func NewCommand(app *cli.App) *cobra.Command {
	var (
		cfg                  Config
		delim                string
		fields, bytes, chars string
	)
	cmd := &cobra.Command{
		Use:   "cut [FILE]...",
		Short: "Remove sections from each line of files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(delim) != 1 {
				return fmt.Errorf("--delim %q must be a single byte", delim)
			}
			cfg.Delimiter = delim[0]

			var list string
			switch {
			case cmd.Flags().Changed("fields") || fields != "":
				cfg.Mode, list = Fields, fields
			case cmd.Flags().Changed("bytes") || bytes != "":
				cfg.Mode, list = Bytes, bytes
			case cmd.Flags().Changed("chars") || chars != "":
				cfg.Mode, list = Chars, chars
			default:
				return errors.New("Must have --fields, --bytes, or --chars")
			}
			pos, err := ParsePositions(list)
			if err != nil {
				return err
			}
			cfg.Positions = pos

			cfg.Files = args
			if len(cfg.Files) == 0 {
				cfg.Files = []string{textio.Stdin}
			}
			return Run(app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&delim, "delim", "d", "\t", "field delimiter")
	flags.StringVarP(&fields, "fields", "f", "", "selected fields")
	flags.StringVarP(&bytes, "bytes", "b", "", "selected bytes")
	flags.StringVarP(&chars, "chars", "c", "", "selected characters")
	flags.BoolVarP(&cfg.OnlyDelimited, "only-delimited", "s", false, "do not print lines not containing delimiters")
	cmd.MarkFlagsMutuallyExclusive("fields", "bytes", "chars")
	return cmd
}
