// Package ls — аналог утилиты UNIX `ls`: список файлов и содержимого каталогов.
package ls

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/afero"

	"coreutils/internal/cli"
)

// timeLayout — формат времени изменения в длинном выводе
const timeLayout = "Jan 02 06 15:04"

// Config хранит значения флагов
type Config struct {
	Paths []string
	Long  bool
	All   bool // -a: показывать скрытые записи каталогов
	Human bool // -h: размеры вида 1.5K
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// findFiles раскрывает каталоги в их записи, отсортированные по имени.
// Явно указанный файл выводится всегда, даже скрытый
func findFiles(app *cli.App, fsys afero.Fs, paths []string, all bool) []string {
	var result []string
	for _, path := range paths {
		info, err := fsys.Stat(path)
		if err != nil {
			app.FileError(path, err)
			continue
		}
		if !info.IsDir() {
			result = append(result, path)
			continue
		}

		entries, err := afero.ReadDir(fsys, path)
		if err != nil {
			app.FileError(path, err)
			continue
		}
		for _, entry := range entries {
			if !all && isHidden(entry.Name()) {
				continue
			}
			result = append(result, filepath.Join(path, entry.Name()))
		}
	}
	return result
}

// formatMode превращает биты прав в строку вида "rwxr-xr-x"
func formatMode(mode uint32) string {
	const full = "rwxrwxrwx"
	var sb strings.Builder
	for i := range len(full) {
		if mode&(1<<(8-i)) != 0 {
			sb.WriteByte(full[i])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// formatSize возвращает размер в байтах либо в человекочитаемом виде
func formatSize(size int64, human bool) string {
	if human {
		return formatHumanSize(size)
	}
	return strconv.FormatInt(size, 10)
}

// longRow собирает колонки длинного формата для одного пути
func longRow(info fs.FileInfo, path string, human bool) []string {
	kind := "-"
	if info.IsDir() {
		kind = "d"
	}
	nlink, user, group := owner(info)
	return []string{
		kind + formatMode(uint32(info.Mode().Perm())),
		strconv.FormatUint(nlink, 10),
		user,
		group,
		formatSize(info.Size(), human),
		info.ModTime().Local().Format(timeLayout),
		path,
	}
}

// numeric — колонки, выравниваемые вправо: число ссылок и размер
var numeric = map[int]bool{1: true, 4: true}

// formatOutput раскладывает строки длинного формата в таблицу без рамок
func formatOutput(rows [][]string) string {
	cell := lipgloss.NewStyle().PaddingRight(2)
	last := len(rows[0]) - 1

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cell
			if col == last {
				style = style.PaddingRight(0)
			}
			if numeric[col] {
				style = style.Align(lipgloss.Right)
			}
			return style
		}).
		Rows(rows...)

	lines := strings.Split(strings.TrimRight(t.Render(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

// Run печатает список путей, в длинном формате — таблицей
func Run(app *cli.App, fsys afero.Fs, cfg Config) error {
	paths := findFiles(app, fsys, cfg.Paths, cfg.All)

	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	if !cfg.Long {
		for _, path := range paths {
			fmt.Fprintln(w, path)
		}
		return nil
	}

	var rows [][]string
	for _, path := range paths {
		info, err := fsys.Stat(path)
		if err != nil {
			w.Flush()
			app.FileError(path, err)
			continue
		}
		rows = append(rows, longRow(info, path, cfg.Human))
	}
	if len(rows) == 0 {
		return nil
	}
	_, err := io.WriteString(w, formatOutput(rows))
	return err
}
