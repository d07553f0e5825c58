package ls

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// NewCommand создаёт команду ls
func NewCommand(app *cli.App) *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   "ls [PATH]...",
		Short: "List directory contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Paths = args
			if len(cfg.Paths) == 0 {
				cfg.Paths = []string{"."}
			}
			return Run(app, afero.NewOsFs(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.Long, "long", "l", false, "long listing")
	flags.BoolVarP(&cfg.All, "all", "a", false, "show hidden entries")
	flags.BoolVarP(&cfg.Human, "human-readable", "h", false, "print sizes like 1.5K")
	return cmd
}
