// Package manual хранит страницы справки утилит в markdown и выводит их через glamour.
package manual

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

//go:embed pages/*.md
var pages embed.FS

// Names возвращает имена утилит, для которых есть страница
func Names() []string {
	entries, _ := fs.ReadDir(pages, "pages")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	return names
}

// Page возвращает исходный markdown страницы
func Page(name string) (string, error) {
	data, err := pages.ReadFile(path.Join("pages", name+".md"))
	if err != nil {
		return "", fmt.Errorf("no manual entry for %s", name)
	}
	return string(data), nil
}

// Render оформляет markdown для терминала. Без цвета используется стиль без escape-последовательностей
func Render(markdown string, color bool, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if color {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(styles.NoTTYStyle))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
