// Package fortune — аналог утилиты UNIX `fortune`: случайное изречение из файлов-источников.
package fortune

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Config хранит источники и параметры выбора
type Config struct {
	Sources []string
	Pattern *regexp.Regexp // nil — вывести одно случайное изречение
	Seed    *uint64
}

// Fortune — одно изречение и файл, из которого оно взято
type Fortune struct {
	Source string
	Text   string
}

// findFiles собирает файлы-источники: каталоги обходятся, файлы .dat пропускаются.
// Результат отсортирован и без повторов, несуществующий путь — ошибка
func findFiles(fsys afero.Fs, logger *log.Logger, paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		if _, err := fsys.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: %w", path, cli.Cause(err))
		}
		afero.Walk(fsys, path, func(name string, info fs.FileInfo, err error) error {
			if err != nil {
				logger.Debug("skipping", "path", name, "err", err)
				return nil
			}
			if info.Mode().IsRegular() && filepath.Ext(name) != ".dat" {
				files = append(files, name)
			}
			return nil
		})
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// parseFortunes разбивает текст на изречения по строкам "%"
func parseFortunes(r io.Reader, source string) ([]Fortune, error) {
	var (
		fortunes []Fortune
		buf      strings.Builder
	)
	flush := func() {
		if text := strings.TrimSpace(buf.String()); text != "" {
			fortunes = append(fortunes, Fortune{Source: source, Text: text})
		}
		buf.Reset()
	}

	err := textio.Lines(r, func(line string) error {
		if textio.TrimEOL(line) == "%" {
			flush()
			return nil
		}
		buf.WriteString(line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()
	return fortunes, nil
}

// readFortunes читает изречения из всех файлов по порядку
func readFortunes(fsys afero.Fs, paths []string) ([]Fortune, error) {
	var result []Fortune
	for _, path := range paths {
		f, err := fsys.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, cli.Cause(err))
		}
		fortunes, err := parseFortunes(bufio.NewReader(f), path)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		result = append(result, fortunes...)
	}
	return result, nil
}

// pickFortune выбирает изречение: с зерном — воспроизводимо, без него — случайно
func pickFortune(fortunes []Fortune, seed *uint64) (string, bool) {
	if len(fortunes) == 0 {
		return "", false
	}
	var i int
	if seed != nil {
		i = rand.New(rand.NewPCG(*seed, *seed)).IntN(len(fortunes))
	} else {
		i = rand.IntN(len(fortunes))
	}
	return fortunes[i].Text, true
}

// Run выводит все изречения по шаблону либо одно случайное
func Run(app *cli.App, fsys afero.Fs, cfg Config) error {
	files, err := findFiles(fsys, app.Log, cfg.Sources)
	if err != nil {
		return cli.Fail(err)
	}
	fortunes, err := readFortunes(fsys, files)
	if err != nil {
		return cli.Fail(err)
	}
	app.Log.Debug("fortunes loaded", "files", len(files), "count", len(fortunes))

	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	if cfg.Pattern == nil {
		text, ok := pickFortune(fortunes, cfg.Seed)
		if !ok {
			text = "No fortunes found"
		}
		fmt.Fprintln(w, text)
		return nil
	}

	prevSource := ""
	for _, f := range fortunes {
		if !cfg.Pattern.MatchString(f.Text) {
			continue
		}
		if f.Source != prevSource {
			w.Flush()
			fmt.Fprintf(app.IO.Err, "(%s)\n%%\n", filepath.Base(f.Source))
			prevSource = f.Source
		}
		fmt.Fprintf(w, "%s\n%%\n", f.Text)
	}
	return nil
}
