// Package wc — аналог утилиты UNIX `wc`: подсчёт строк, слов, символов и байт.
package wc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Config хранит выбранные счётчики
type Config struct {
	Files   []string
	Lines   bool
	Words   bool
	Bytes   bool
	Chars   bool
	MaxLine bool
}

// FileInfo — результат подсчёта по одному входу
type FileInfo struct {
	Lines   int
	Words   int
	Bytes   int
	Chars   int
	MaxLine int
}

// add накапливает итоговую строку, для максимальной длины берётся максимум
func (fi *FileInfo) add(o FileInfo) {
	fi.Lines += o.Lines
	fi.Words += o.Words
	fi.Bytes += o.Bytes
	fi.Chars += o.Chars
	fi.MaxLine = max(fi.MaxLine, o.MaxLine)
}

// Count считает всё за один проход по строкам
func Count(r io.Reader) (FileInfo, error) {
	var info FileInfo
	err := textio.Lines(r, func(line string) error {
		info.Lines++
		info.Bytes += len(line)
		info.Words += len(strings.Fields(line))
		info.Chars += utf8.RuneCountInString(line)
		info.MaxLine = max(info.MaxLine, utf8.RuneCountInString(textio.TrimEOL(line)))
		return nil
	})
	return info, err
}

// formatField печатает значение шириной 8 либо пустую строку
func formatField(value int, show bool) string {
	if show {
		return fmt.Sprintf("%8d", value)
	}
	return ""
}

func (cfg Config) format(info FileInfo) string {
	return formatField(info.Lines, cfg.Lines) +
		formatField(info.Words, cfg.Words) +
		formatField(info.Chars, cfg.Chars) +
		formatField(info.Bytes, cfg.Bytes) +
		formatField(info.MaxLine, cfg.MaxLine)
}

// Run печатает счётчики по каждому файлу и итог, если файлов больше одного
func Run(app *cli.App, cfg Config) error {
	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	var total FileInfo
	for _, name := range cfg.Files {
		f, err := textio.Open(name, app.IO.In)
		if err != nil {
			w.Flush()
			app.FileError(name, err)
			continue
		}
		info, err := Count(f)
		f.Close()
		if err != nil {
			w.Flush()
			app.FileError(name, err)
			continue
		}

		suffix := ""
		if name != textio.Stdin {
			suffix = " " + name
		}
		fmt.Fprintf(w, "%s%s\n", cfg.format(info), suffix)
		total.add(info)
	}

	if len(cfg.Files) > 1 {
		fmt.Fprintf(w, "%s total\n", cfg.format(total))
	}
	return nil
}
