package fortune

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// NewCommand создаёт команду fortune
func NewCommand(app *cli.App) *cobra.Command {
	var (
		cfg         Config
		pattern     string
		seed        string
		insensitive bool
	)
	cmd := &cobra.Command{
		Use:   "fortune FILE...",
		Short: "Print a random adage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed != "" {
				n, err := strconv.ParseUint(seed, 10, 64)
				if err != nil {
					return fmt.Errorf("%q not a valid integer", seed)
				}
				cfg.Seed = &n
			}
			if pattern != "" {
				expr := pattern
				if insensitive {
					expr = "(?i)" + expr
				}
				re, err := regexp.Compile(expr)
				if err != nil {
					return fmt.Errorf("Invalid --pattern %q", pattern)
				}
				cfg.Pattern = re
			}

			cfg.Sources = args
			return Run(app, afero.NewOsFs(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&pattern, "pattern", "m", "", "print all fortunes matching the pattern")
	flags.BoolVarP(&insensitive, "insensitive", "i", false, "case-insensitive pattern matching")
	flags.StringVarP(&seed, "seed", "s", "", "random seed")
	return cmd
}
