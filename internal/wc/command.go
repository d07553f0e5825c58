package wc

import (
	"github.com/spf13/cobra"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// NewCommand создаёт команду wc
func NewCommand(app *cli.App) *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:   "wc [FILE]...",
		Short: "Print newline, word, and byte counts for each file",
		RunE: func(cmd *cobra.Command, args []string) error {
			// без флагов выбора считаем строки, слова и байты
			if !cfg.Lines && !cfg.Words && !cfg.Bytes && !cfg.Chars && !cfg.MaxLine {
				cfg.Lines, cfg.Words, cfg.Bytes = true, true, true
			}
			cfg.Files = args
			if len(cfg.Files) == 0 {
				cfg.Files = []string{textio.Stdin}
			}
			return Run(app, cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.Lines, "lines", "l", false, "count lines")
	flags.BoolVarP(&cfg.Words, "words", "w", false, "count words")
	flags.BoolVarP(&cfg.Bytes, "bytes", "c", false, "count bytes")
	flags.BoolVarP(&cfg.Chars, "chars", "m", false, "count characters")
	flags.BoolVarP(&cfg.MaxLine, "max-line-length", "L", false, "print the maximum line length")
	cmd.MarkFlagsMutuallyExclusive("bytes", "chars")
	return cmd
}
