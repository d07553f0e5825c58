// Package cut — аналог утилиты UNIX `cut`: выбор байтов, символов или полей каждой строки.
package cut

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Mode — что именно вырезается
type Mode int

const (
	Fields Mode = iota
	Bytes
	Chars
)

// Config хранит значения флагов
type Config struct {
	Files         []string
	Delimiter     byte
	Mode          Mode
	Positions     PositionList
	OnlyDelimited bool // -s: пропускать строки без разделителя
}

// extractBytes выбирает байты по позициям, некорректный UTF-8 заменяется
func extractBytes(line string, pos PositionList) string {
	var out []byte
	for _, r := range pos {
		for i := r.Start; i < r.End && i < len(line); i++ {
			out = append(out, line[i])
		}
	}
	return textio.Lossy(out)
}

// extractChars выбирает символы по позициям
func extractChars(line string, pos PositionList) string {
	runes := []rune(line)
	var out []rune
	for _, r := range pos {
		for i := r.Start; i < r.End && i < len(runes); i++ {
			out = append(out, runes[i])
		}
	}
	return string(out)
}

// extractFields выбирает поля записи по позициям, отсутствующие поля пропускаются
func extractFields(record []string, pos PositionList) []string {
	out := make([]string, 0, len(record))
	for _, r := range pos {
		for i := r.Start; i < r.End && i < len(record); i++ {
			out = append(out, record[i])
		}
	}
	return out
}

// processLines обрабатывает вход построчно в режимах -b и -c
func processLines(r io.Reader, w io.Writer, cfg Config) error {
	extract := extractChars
	if cfg.Mode == Bytes {
		extract = extractBytes
	}
	return textio.Lines(r, func(line string) error {
		_, err := fmt.Fprintln(w, extract(textio.TrimEOL(line), cfg.Positions))
		return err
	})
}

// needsQuotes сообщает, нужно ли брать поле в кавычки: только если в нём есть разделитель, кавычка или перевод строки
func needsQuotes(field string, delim byte) bool {
	return strings.IndexByte(field, delim) >= 0 || strings.ContainsAny(field, "\"\r\n")
}

// writeRecord печатает поля через разделитель, кавычки ставятся только там, где без них запись не прочитать
func writeRecord(w io.Writer, fields []string, delim byte) error {
	var sb strings.Builder
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(delim)
		}
		if !needsQuotes(field, delim) {
			sb.WriteString(field)
			continue
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// processRecords читает вход как CSV с заданным разделителем и пишет выбранные поля так же
func processRecords(r io.Reader, w io.Writer, cfg Config) error {
	reader := csv.NewReader(r)
	reader.Comma = rune(cfg.Delimiter)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if cfg.OnlyDelimited && len(record) < 2 {
			continue
		}
		if err := writeRecord(w, extractFields(record, cfg.Positions), cfg.Delimiter); err != nil {
			return err
		}
	}
	return nil
}

// processFile определяет режим и обрабатывает один вход
func processFile(r io.Reader, w io.Writer, cfg Config) error {
	if cfg.Mode == Fields {
		return processRecords(r, w, cfg)
	}
	return processLines(r, w, cfg)
}

// Run обрабатывает все файлы, ошибка по файлу печатается и не прерывает работу
func Run(app *cli.App, cfg Config) error {
	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	for _, name := range cfg.Files {
		f, err := textio.Open(name, app.IO.In)
		if err != nil {
			w.Flush()
			app.FileError(name, err)
			continue
		}
		err = processFile(f, w, cfg)
		f.Close()
		if err != nil {
			w.Flush()
			app.FileError(name, err)
		}
	}
	return nil
}
