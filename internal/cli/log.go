package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger создаёт логгер для диагностики в stderr: без времени, с именем утилиты в префиксе
func NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
}
