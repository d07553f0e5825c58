package cal

import (
	"errors"

	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// NewCommand создаёт команду cal
func NewCommand(app *cli.App) *cobra.Command {
	var (
		month       string
		currentYear bool
		ntpServer   string
	)
	cmd := &cobra.Command{
		Use:   "cal [YEAR]",
		Short: "Display a calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg Config
			if month != "" {
				m, err := ParseMonth(month)
				if err != nil {
					return err
				}
				cfg.Month = m
			}
			if len(args) == 1 {
				if currentYear {
					return errors.New("--year cannot be used with YEAR")
				}
				y, err := ParseYear(args[0])
				if err != nil {
					return err
				}
				cfg.Year = y
			}

			cfg.Today = today(app, ntpServer)
			switch {
			case currentYear:
				cfg.Month, cfg.Year = 0, cfg.Today.Year()
			case cfg.Month == 0 && cfg.Year == 0:
				cfg.Month, cfg.Year = cfg.Today.Month(), cfg.Today.Year()
			case cfg.Year == 0:
				cfg.Year = cfg.Today.Year()
			}
			return Run(app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&month, "month", "m", "", "month name or number (1-12)")
	flags.BoolVarP(&currentYear, "year", "y", false, "show the whole current year")
	flags.StringVar(&ntpServer, "ntp-server", "", "take today's date from this NTP server")
	cmd.MarkFlagsMutuallyExclusive("month", "year")
	return cmd
}
