// Package tail — аналог утилиты UNIX `tail`: последние строки или байты файлов, с режимом слежения.
package tail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// TakeValue — разобранное значение -n или -c.
// Положительное Num — начать с позиции Num, отрицательное — взять последние |Num|
type TakeValue struct {
	PlusZero bool // "+0": весь вход
	Num      int64
}

// Config хранит значения флагов
type Config struct {
	Files  []string
	Lines  TakeValue
	Bytes  *TakeValue // nil — режим строк
	Quiet  bool
	Follow bool
}

// ParseTakeNum разбирает "+N", "-N" или "N". Без знака число означает последние N
func ParseTakeNum(value string) (TakeValue, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return TakeValue{}, errors.New(value)
	}
	if value == "+0" {
		return TakeValue{PlusZero: true}, nil
	}
	if !strings.HasPrefix(value, "+") && !strings.HasPrefix(value, "-") {
		n = -n
	}
	return TakeValue{Num: n}, nil
}

// StartIndex возвращает индекс (с нуля), с которого печатать, или false, если печатать нечего
func StartIndex(take TakeValue, total int64) (int64, bool) {
	if total == 0 {
		return 0, false
	}
	if take.PlusZero {
		return 0, true
	}
	switch n := take.Num; {
	case n == 0 || n > total:
		return 0, false
	case n < 0 && n < -total:
		return 0, true
	case n < 0:
		return total + n, true
	default:
		return n - 1, true
	}
}

// countLinesBytes считает строки и байты входа
func countLinesBytes(r io.Reader) (lines, size int64, err error) {
	br := bufio.NewReader(r)
	for {
		line, err := textio.ReadLine(br)
		if errors.Is(err, io.EOF) {
			return lines, size, nil
		}
		if err != nil {
			return 0, 0, err
		}
		lines++
		size += int64(len(line))
	}
}

// printLines печатает строки начиная с нужной, сохраняя окончания
func printLines(r io.Reader, w io.Writer, take TakeValue, total int64) error {
	start, ok := StartIndex(take, total)
	if !ok {
		return nil
	}
	var i int64
	return textio.Lines(r, func(line string) error {
		defer func() { i++ }()
		if i < start {
			return nil
		}
		_, err := io.WriteString(w, line)
		return err
	})
}

// printBytes переходит к нужному байту и печатает остаток, некорректный UTF-8 заменяется
func printBytes(rs io.ReadSeeker, w io.Writer, take TakeValue, total int64) error {
	start, ok := StartIndex(take, total)
	if !ok {
		return nil
	}
	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return err
	}
	buf, err := io.ReadAll(rs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, textio.Lossy(buf))
	return err
}

// tailFile печатает хвост одного файла и возвращает смещение конца для слежения
func tailFile(f *os.File, w io.Writer, cfg Config) (int64, error) {
	lines, size, err := countLinesBytes(f)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	if cfg.Bytes != nil {
		err = printBytes(f, w, *cfg.Bytes, size)
	} else {
		err = printLines(f, w, cfg.Lines, lines)
	}
	if err != nil {
		return 0, err
	}
	return f.Seek(0, io.SeekEnd)
}

// header печатает заголовок "==> имя <==", перед всеми кроме первого — пустая строка
func header(w io.Writer, name string, first bool) {
	if !first {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "==> %s <==\n", name)
}

// Run печатает хвосты файлов, при Follow продолжает следить за ними до отмены контекста
func Run(ctx context.Context, app *cli.App, cfg Config) error {
	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	headers := len(cfg.Files) > 1 && !cfg.Quiet

	var fw *follower
	if cfg.Follow {
		var err error
		if fw, err = newFollower(app, w, headers); err != nil {
			return err
		}
		defer fw.Close()
	}

	first := true
	for _, name := range cfg.Files {
		f, err := os.Open(name)
		if err != nil {
			w.Flush()
			app.FileError(name, err)
			continue
		}
		if fw != nil {
			if err := fw.watch(name); err != nil {
				app.Log.Warn("cannot follow", "file", name, "err", err)
			}
		}
		if headers {
			header(w, name, first)
			first = false
		}
		offset, err := tailFile(f, w, cfg)
		f.Close()
		if err != nil {
			w.Flush()
			app.FileError(name, err)
			continue
		}
		if fw != nil {
			fw.track(name, offset)
		}
	}

	if fw == nil || len(fw.offsets) == 0 {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return fw.loop(ctx)
}
