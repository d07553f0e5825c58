// Package grep — аналог утилиты UNIX `grep`: поиск строк по шаблону в файлах и каталогах.
package grep

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Config хранит значения флагов
type Config struct {
	Pattern    string
	Files      []string
	Count      bool // -c
	Ignore     bool // -i
	Invert     bool // -v
	Fixed      bool // -F
	Recursive  bool // -r
	LineNumber bool // -n
	Before     int  // -B
	After      int  // -A
}

// input — файл для поиска либо ошибка, найденная при разборе путей
type input struct {
	name string
	err  error
}

// makeMatcher возвращает функцию, которая проверяет, соответствует ли строка шаблону
func makeMatcher(pattern string, fixed, ignore bool) (func(string) bool, error) {
	if fixed {
		if ignore {
			pattern = strings.ToLower(pattern)
		}
		return func(s string) bool {
			if ignore {
				s = strings.ToLower(s)
			}
			return strings.Contains(s, pattern)
		}, nil
	}

	expr := pattern
	if ignore {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("Invalid pattern %q", pattern)
	}
	return re.MatchString, nil
}

// findFiles раскрывает пути в список входов. Без -r каталог считается ошибкой,
// с -r каталоги обходятся и в список попадают только файлы
func findFiles(fsys afero.Fs, paths []string, recursive bool) []input {
	var inputs []input
	for _, path := range paths {
		if path == textio.Stdin {
			inputs = append(inputs, input{name: path})
			continue
		}

		if !recursive {
			info, err := fsys.Stat(path)
			switch {
			case err != nil:
				inputs = append(inputs, input{name: path, err: fmt.Errorf("%s: %w", path, cli.Cause(err))})
			case info.IsDir():
				inputs = append(inputs, input{name: path, err: fmt.Errorf("%s is a directory", path)})
			default:
				inputs = append(inputs, input{name: path})
			}
			continue
		}

		afero.Walk(fsys, path, func(name string, info fs.FileInfo, err error) error {
			if err != nil {
				inputs = append(inputs, input{name: name, err: fmt.Errorf("%s: %w", name, cli.Cause(err))})
				return nil
			}
			if !info.IsDir() {
				inputs = append(inputs, input{name: name})
			}
			return nil
		})
	}
	return inputs
}

// readLines считывает все строки вместе с окончаниями
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	err := textio.Lines(r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// findMatches отмечает строки, которые соответствуют шаблону (или не соответствуют при -v)
func findMatches(lines []string, matcher func(string) bool, invert bool) []bool {
	matched := make([]bool, len(lines))
	for i, line := range lines {
		matched[i] = matcher(textio.TrimEOL(line)) != invert
	}
	return matched
}

// printMatches выводит совпавшие строки с контекстом. Совпадения отделяются от префикса ':', контекст '-'
func printMatches(w io.Writer, prefix string, lines []string, matched []bool, cfg Config) {
	printed := make([]bool, len(lines))
	for i := range lines {
		if !matched[i] {
			continue
		}
		start := max(i-cfg.Before, 0)
		end := min(i+cfg.After, len(lines)-1)
		for j := start; j <= end; j++ {
			if printed[j] {
				continue
			}
			printed[j] = true

			sep := "-"
			if matched[j] {
				sep = ":"
			}
			if prefix != "" {
				io.WriteString(w, prefix+sep)
			}
			if cfg.LineNumber {
				fmt.Fprintf(w, "%d%s", j+1, sep)
			}
			io.WriteString(w, lines[j])
			if !strings.HasSuffix(lines[j], "\n") {
				io.WriteString(w, "\n")
			}
		}
	}
}

// search ищет в одном входе и пишет результат в буфер
func search(r io.Reader, out *bytes.Buffer, prefix string, matcher func(string) bool, cfg Config) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}
	matched := findMatches(lines, matcher, cfg.Invert)

	if cfg.Count {
		n := 0
		for _, m := range matched {
			if m {
				n++
			}
		}
		if prefix != "" {
			fmt.Fprintf(out, "%s:%d\n", prefix, n)
		} else {
			fmt.Fprintf(out, "%d\n", n)
		}
		return nil
	}
	printMatches(out, prefix, lines, matched, cfg)
	return nil
}

// Run ищет во всех входах параллельно и печатает результаты в порядке входов
func Run(ctx context.Context, app *cli.App, fsys afero.Fs, cfg Config) error {
	matcher, err := makeMatcher(cfg.Pattern, cfg.Fixed, cfg.Ignore)
	if err != nil {
		return err
	}

	inputs := findFiles(fsys, cfg.Files, cfg.Recursive)
	multiple := len(inputs) > 1

	type result struct {
		out bytes.Buffer
		err error
	}
	results := make([]result, len(inputs))

	var (
		g         errgroup.Group
		stdinRead bool
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		if in.err != nil {
			results[i].err = in.err
			continue
		}
		// stdin читается один раз до запуска горутин, повторный "-" получает пустой ввод
		var stdin io.Reader
		if in.name == textio.Stdin {
			var data []byte
			if !stdinRead {
				stdinRead = true
				if data, err = io.ReadAll(app.IO.In); err != nil {
					results[i].err = fmt.Errorf("%s: %w", in.name, err)
					continue
				}
			}
			stdin = bytes.NewReader(data)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			prefix := ""
			if multiple {
				prefix = in.name
			}

			var r io.ReadCloser
			if stdin != nil {
				r = io.NopCloser(stdin)
			} else {
				f, err := fsys.Open(in.name)
				if err != nil {
					results[i].err = fmt.Errorf("%s: %w", in.name, cli.Cause(err))
					return nil
				}
				r = f
			}
			defer r.Close()

			if err := search(r, &results[i].out, prefix, matcher, cfg); err != nil {
				results[i].err = fmt.Errorf("%s: %w", in.name, cli.Cause(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()
	for _, res := range results {
		if res.err != nil {
			w.Flush()
			app.Log.Debug("input failed", "err", res.err)
			fmt.Fprintln(app.IO.Err, res.err)
			continue
		}
		if _, err := w.Write(res.out.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
