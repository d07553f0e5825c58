package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// UseColor решает, раскрашивать ли вывод: настройка color = always|never|auto,
// для auto — только если stdout является терминалом
func (a *App) UseColor() bool {
	switch a.Config.GetString("color") {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := a.IO.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
