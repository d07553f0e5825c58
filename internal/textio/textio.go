// Package textio содержит общие помощники чтения входных данных:
// открытие файла или stdin по имени "-" и построчное чтение с сохранением окончаний строк.
package textio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Stdin — имя, которым в аргументах обозначается стандартный ввод
const Stdin = "-"

// Open открывает файл по имени, для "-" возвращает stdin, который не закрывается
func Open(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == Stdin {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadLine читает следующую строку вместе с её окончанием.
// Последняя строка может быть без перевода строки, io.EOF возвращается только если ничего не прочитано
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// Lines вызывает fn для каждой строки из r (с окончанием), пока fn не вернёт ошибку
func Lines(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := ReadLine(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// TrimEOL убирает одно окончание строки: "\n" или "\r\n"
func TrimEOL(line string) string {
	if strings.HasSuffix(line, "\n") {
		line = line[:len(line)-1]
		line = strings.TrimSuffix(line, "\r")
	}
	return line
}

// Lossy превращает байты в строку, заменяя некорректные UTF-8 последовательности на U+FFFD
func Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
