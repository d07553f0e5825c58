// Package cal — аналог утилиты UNIX `cal`: календарь на месяц или на год.
package cal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"coreutils/internal/cli"
)

// lineWidth — ширина блока одного месяца вместе с двумя пробелами справа
const lineWidth = 22

// Config хранит, что показывать
type Config struct {
	Month time.Month // 0 — весь год
	Year  int
	Today time.Time
}

// highlighter оформляет сегодняшний день; nil — без оформления
type highlighter func(string) string

// newHighlighter возвращает инверсию цвета для сегодняшнего дня, если вывод цветной
func newHighlighter(app *cli.App) highlighter {
	if !app.UseColor() {
		return nil
	}
	r := lipgloss.NewRenderer(app.IO.Out)
	r.SetColorProfile(termenv.ANSI)
	style := r.NewStyle().Reverse(true)
	return func(s string) string { return style.Render(s) }
}

// padRight дополняет строку пробелами до видимой ширины width
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// center выравнивает строку по центру поля width, лишний пробел уходит вправо
func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// formatMonth возвращает 8 строк блока месяца шириной lineWidth
func formatMonth(year int, month time.Month, printYear bool, today time.Time, hl highlighter) []string {
	title := monthNames[month-1]
	if printYear {
		title = fmt.Sprintf("%s %d", title, year)
	}
	lines := []string{
		center(title, lineWidth-2) + "  ",
		"Su Mo Tu We Th Fr Sa  ",
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()

	var cells []string
	for range int(first.Weekday()) {
		cells = append(cells, "  ")
	}
	for day := 1; day <= last; day++ {
		cell := fmt.Sprintf("%2d", day)
		if hl != nil && today.Year() == year && today.Month() == month && today.Day() == day {
			cell = hl(cell)
		}
		cells = append(cells, cell)
	}

	for len(cells) > 0 {
		n := min(7, len(cells))
		lines = append(lines, padRight(strings.Join(cells[:n], " "), lineWidth-2)+"  ")
		cells = cells[n:]
	}
	for len(lines) < 8 {
		lines = append(lines, strings.Repeat(" ", lineWidth))
	}
	return lines
}

// printYear печатает год: номер года и месяцы по три в ряд
func printYear(w io.Writer, year int, today time.Time, hl highlighter) {
	fmt.Fprintf(w, "%32d\n", year)
	for row := 0; row < 4; row++ {
		blocks := make([][]string, 3)
		for i := range blocks {
			blocks[i] = formatMonth(year, time.Month(row*3+i+1), false, today, hl)
		}
		for i := range blocks[0] {
			fmt.Fprintln(w, blocks[0][i]+blocks[1][i]+blocks[2][i])
		}
		if row < 3 {
			fmt.Fprintln(w)
		}
	}
}

// Run печатает календарь
func Run(app *cli.App, cfg Config) error {
	w := bufio.NewWriter(app.IO.Out)
	defer w.Flush()

	hl := newHighlighter(app)
	if cfg.Month == 0 {
		printYear(w, cfg.Year, cfg.Today, hl)
		return nil
	}
	for _, line := range formatMonth(cfg.Year, cfg.Month, true, cfg.Today, hl) {
		fmt.Fprintln(w, line)
	}
	return nil
}
