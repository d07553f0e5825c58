package find

import (
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// NewCommand создаёт команду find
func NewCommand(app *cli.App) *cobra.Command {
	var (
		cfg   Config
		names []string
		types []string
	)
	cmd := &cobra.Command{
		Use:   "find [PATH]...",
		Short: "Search for files in a directory hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range names {
				re, err := regexp.Compile(name)
				if err != nil {
					return fmt.Errorf("Invalid --name %q", name)
				}
				cfg.Names = append(cfg.Names, re)
			}
			for _, s := range types {
				t, err := ParseEntryType(s)
				if err != nil {
					return err
				}
				cfg.Types = append(cfg.Types, t)
			}

			cfg.Paths = args
			if len(cfg.Paths) == 0 {
				cfg.Paths = []string{"."}
			}
			return Run(app, afero.NewOsFs(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&names, "name", "n", nil, "name regex (repeatable)")
	flags.StringSliceVarP(&types, "type", "t", nil, "entry type: f, d or l (repeatable)")
	flags.IntVar(&cfg.MinDepth, "min-depth", 0, "do not print entries above this depth")
	flags.IntVar(&cfg.MaxDepth, "max-depth", -1, "descend at most this many levels")
	return cmd
}
