// Package uniq — аналог утилиты UNIX `uniq`: схлопывает соседние одинаковые строки.
package uniq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Config хранит значения флагов
type Config struct {
	InFile     string
	OutFile    string // пусто — stdout
	Count      bool   // -c
	Repeated   bool   // -d
	Unique     bool   // -u
	IgnoreCase bool   // -i
}

// sameLine сравнивает строки без хвостовых пробелов и окончаний
func (cfg Config) sameLine(a, b string) bool {
	a, b = strings.TrimRight(a, " \t\r\n\v\f"), strings.TrimRight(b, " \t\r\n\v\f")
	if cfg.IgnoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Uniq читает строки из r и пишет первую строку каждой группы соседних одинаковых строк
func Uniq(r io.Reader, w io.Writer, cfg Config) error {
	var (
		previous string
		count    int
	)

	// emit выводит группу с учётом флагов -c, -d, -u
	emit := func() error {
		if count == 0 {
			return nil
		}
		if cfg.Repeated && count < 2 || cfg.Unique && count > 1 {
			return nil
		}
		if cfg.Count {
			_, err := fmt.Fprintf(w, "%4d %s", count, previous)
			return err
		}
		_, err := io.WriteString(w, previous)
		return err
	}

	err := textio.Lines(r, func(line string) error {
		if count == 0 || !cfg.sameLine(line, previous) {
			if err := emit(); err != nil {
				return err
			}
			previous = line
			count = 0
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	return emit()
}

// Run открывает вход и выход. Ошибка открытия любого из них завершает утилиту с кодом 1
func Run(app *cli.App, cfg Config) error {
	in, err := textio.Open(cfg.InFile, app.IO.In)
	if err != nil {
		return cli.FileFail(cfg.InFile, err)
	}
	defer in.Close()

	if cfg.OutFile == "" {
		return writeUniq(in, app.IO.Out, cfg)
	}

	f, err := os.Create(cfg.OutFile)
	if err != nil {
		return cli.FileFail(cfg.OutFile, err)
	}
	if err := writeUniq(in, f, cfg); err != nil {
		f.Close()
		return cli.FileFail(cfg.OutFile, err)
	}
	if err := f.Close(); err != nil {
		return cli.FileFail(cfg.OutFile, err)
	}
	return nil
}

// writeUniq пишет результат через буфер и сбрасывает его
func writeUniq(in io.Reader, out io.Writer, cfg Config) error {
	w := bufio.NewWriter(out)
	if err := Uniq(in, w, cfg); err != nil {
		return err
	}
	return w.Flush()
}
