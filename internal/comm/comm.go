// Package comm — аналог утилиты UNIX `comm`: построчное сравнение двух отсортированных файлов.
package comm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// Config хранит значения флагов
type Config struct {
	File1       string
	File2       string
	ShowCol1    bool // строки только из первого файла
	ShowCol2    bool // строки только из второго файла
	ShowCol3    bool // общие строки
	Insensitive bool
	Delimiter   string
}

// lineReader отдаёт строки без окончаний, при -i в нижнем регистре
type lineReader struct {
	br    *bufio.Reader
	lower bool
}

func (r *lineReader) next() (string, bool, error) {
	line, err := textio.ReadLine(r.br)
	if errors.Is(err, io.EOF) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	line = textio.TrimEOL(line)
	if r.lower {
		line = strings.ToLower(line)
	}
	return line, true, nil
}

// printer печатает строку в свою колонку, пустые ячейки ставятся перед ней для видимых колонок левее
type printer struct {
	w   io.Writer
	cfg Config
}

func (p printer) print(col int, val string) error {
	var cells []string
	switch col {
	case 1:
		if p.cfg.ShowCol1 {
			cells = append(cells, val)
		}
	case 2:
		if p.cfg.ShowCol2 {
			if p.cfg.ShowCol1 {
				cells = append(cells, "")
			}
			cells = append(cells, val)
		}
	case 3:
		if p.cfg.ShowCol3 {
			if p.cfg.ShowCol1 {
				cells = append(cells, "")
			}
			if p.cfg.ShowCol2 {
				cells = append(cells, "")
			}
			cells = append(cells, val)
		}
	}
	if len(cells) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(p.w, strings.Join(cells, p.cfg.Delimiter))
	return err
}

// Compare сливает два отсортированных потока и раскладывает строки по трём колонкам
func Compare(r1, r2 io.Reader, w io.Writer, cfg Config) error {
	lines1 := &lineReader{br: bufio.NewReader(r1), lower: cfg.Insensitive}
	lines2 := &lineReader{br: bufio.NewReader(r2), lower: cfg.Insensitive}
	p := printer{w: w, cfg: cfg}

	line1, ok1, err := lines1.next()
	if err != nil {
		return err
	}
	line2, ok2, err := lines2.next()
	if err != nil {
		return err
	}

	for ok1 || ok2 {
		var advance1, advance2 bool
		switch {
		case ok1 && ok2 && line1 == line2:
			err = p.print(3, line1)
			advance1, advance2 = true, true
		case ok1 && (!ok2 || line1 < line2):
			err = p.print(1, line1)
			advance1 = true
		default:
			err = p.print(2, line2)
			advance2 = true
		}
		if err != nil {
			return err
		}

		if advance1 {
			if line1, ok1, err = lines1.next(); err != nil {
				return err
			}
		}
		if advance2 {
			if line2, ok2, err = lines2.next(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run открывает оба файла и сравнивает их. Ошибка открытия фатальна
func Run(app *cli.App, cfg Config) error {
	if cfg.File1 == textio.Stdin && cfg.File2 == textio.Stdin {
		return errors.New(`Both input files cannot be STDIN ("-")`)
	}

	f1, err := textio.Open(cfg.File1, app.IO.In)
	if err != nil {
		return cli.FileFail(cfg.File1, err)
	}
	defer f1.Close()

	f2, err := textio.Open(cfg.File2, app.IO.In)
	if err != nil {
		return cli.FileFail(cfg.File2, err)
	}
	defer f2.Close()

	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()
	return Compare(f1, f2, w, cfg)
}
