// Package cat — аналог утилиты UNIX `cat`: склеивает файлы в stdout с нумерацией строк.
package cat

import (
	"bufio"
	"fmt"
	"io"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Config хранит значения флагов
type Config struct {
	Files          []string
	Number         bool // -n
	NumberNonblank bool // -b
	SqueezeBlank   bool // -s
	ShowEnds       bool // -E
}

// Run выводит все файлы по очереди, ошибки открытия печатаются и не прерывают работу
func Run(app *cli.App, cfg Config) error {
	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	for _, name := range cfg.Files {
		f, err := textio.Open(name, app.IO.In)
		if err != nil {
			w.Flush()
			app.Log.Debug("input failed", "file", name, "err", err)
			fmt.Fprintf(app.IO.Err, "Failed to open %s: %v\n", name, cli.Cause(err))
			continue
		}
		err = catFile(f, w, cfg)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// catFile копирует один поток, номер строки начинается с 1 для каждого файла
func catFile(r io.Reader, w io.Writer, cfg Config) error {
	lineNum := 0
	prevBlank := false
	end := "\n"
	if cfg.ShowEnds {
		end = "$\n"
	}

	return textio.Lines(r, func(raw string) error {
		line := textio.TrimEOL(raw)
		blank := line == ""
		if cfg.SqueezeBlank && blank && prevBlank {
			return nil
		}
		prevBlank = blank

		switch {
		case cfg.Number:
			lineNum++
			_, err := fmt.Fprintf(w, "%6d\t%s%s", lineNum, line, end)
			return err
		case cfg.NumberNonblank && !blank:
			lineNum++
			_, err := fmt.Fprintf(w, "%6d\t%s%s", lineNum, line, end)
			return err
		default:
			_, err := fmt.Fprint(w, line, end)
			return err
		}
	})
}
