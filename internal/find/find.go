// Package find — аналог утилиты UNIX `find`: обход каталогов с фильтрами по имени и типу.
package find

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"coreutils/internal/cli"
)

// EntryType — тип записи файловой системы для флага -t
type EntryType int

const (
	Dir  EntryType = iota // d
	File                  // f
	Link                  // l
)

// ParseEntryType разбирает значение флага -t
func ParseEntryType(s string) (EntryType, error) {
	switch s {
	case "d":
		return Dir, nil
	case "f":
		return File, nil
	case "l":
		return Link, nil
	}
	return 0, fmt.Errorf("invalid value %q for --type: possible values are f, d, l", s)
}

// matches проверяет тип записи, симлинки не разыменовываются
func (t EntryType) matches(info fs.FileInfo) bool {
	switch t {
	case Dir:
		return info.IsDir()
	case File:
		return info.Mode().IsRegular()
	case Link:
		return info.Mode()&os.ModeSymlink != 0
	}
	return false
}

// Config хранит пути и фильтры
type Config struct {
	Paths    []string
	Names    []*regexp.Regexp
	Types    []EntryType
	MinDepth int
	MaxDepth int // < 0 — без ограничения
}

func (cfg Config) typeMatch(info fs.FileInfo) bool {
	if len(cfg.Types) == 0 {
		return true
	}
	for _, t := range cfg.Types {
		if t.matches(info) {
			return true
		}
	}
	return false
}

func (cfg Config) nameMatch(name string) bool {
	if len(cfg.Names) == 0 {
		return true
	}
	for _, re := range cfg.Names {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// depth возвращает глубину path относительно корня обхода
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

// Run обходит каждый путь и печатает подходящие записи. Ошибки обхода печатаются, обход продолжается
func Run(app *cli.App, fsys afero.Fs, cfg Config) error {
	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	for _, root := range cfg.Paths {
		err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				w.Flush()
				fmt.Fprintln(app.IO.Err, err)
				return nil
			}

			d := depth(root, path)
			if cfg.MaxDepth >= 0 && d > cfg.MaxDepth {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d >= cfg.MinDepth && cfg.typeMatch(info) && cfg.nameMatch(filepath.Base(path)) {
				fmt.Fprintln(w, path)
			}
			if info.IsDir() && d == cfg.MaxDepth {
				app.Log.Debug("max depth reached", "dir", path)
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
