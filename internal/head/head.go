// Package head — аналог утилиты UNIX `head`: первые строки или байты каждого файла.
package head

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Config хранит значения флагов
type Config struct {
	Files   []string
	Lines   int
	Bytes   int // 0 — режим строк
	Quiet   bool
	Verbose bool
}

// ParsePositiveInt разбирает строго положительное целое число
func ParsePositiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, errors.New(value)
	}
	return n, nil
}

// showHeaders решает, печатать ли заголовки "==> имя <=="
func showHeaders(cfg Config) bool {
	if cfg.Verbose {
		return true
	}
	return len(cfg.Files) > 1 && !cfg.Quiet
}

// Run выводит начало каждого файла
func Run(app *cli.App, cfg Config) error {
	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	headers := showHeaders(cfg)
	first := true
	for _, name := range cfg.Files {
		f, err := textio.Open(name, app.IO.In)
		if err != nil {
			w.Flush()
			app.FileError(name, err)
			continue
		}
		if headers {
			if !first {
				fmt.Fprintln(w)
			}
			first = false
			fmt.Fprintf(w, "==> %s <==\n", name)
		}
		if cfg.Bytes > 0 {
			err = headBytes(f, w, cfg.Bytes)
		} else {
			err = headLines(f, w, cfg.Lines)
		}
		f.Close()
		if err != nil {
			w.Flush()
			app.FileError(name, err)
		}
	}
	return nil
}

// headLines печатает первые n строк, сохраняя их окончания
func headLines(r io.Reader, w io.Writer, n int) error {
	br := bufio.NewReader(r)
	for i := 0; i < n; i++ {
		line, err := textio.ReadLine(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// headBytes печатает первые n байт, некорректный UTF-8 заменяется
func headBytes(r io.Reader, w io.Writer, n int) error {
	buf, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, textio.Lossy(buf))
	return err
}
