// Package clitest собирает окружение утилиты для тестов: stdin из строки, stdout и stderr в буферы.
package clitest

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"coreutils/internal/cli"
)

// Result — захваченный вывод утилиты
type Result struct {
	Code   int
	Stdout string
	Stderr string
}

// NewApp создаёт окружение с stdin из строки и буферами для вывода
func NewApp(t testing.TB, name, stdin string) (*cli.App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := cli.NewApp(name, cli.IO{In: strings.NewReader(stdin), Out: &out, Err: &errOut})
	return app, &out, &errOut
}

// Run создаёт команду через newCommand и выполняет её с аргументами.
// Каталог конфигурации подменяется пустым временным, чтобы настройки пользователя не влияли на тест
func Run(t testing.TB, newCommand func(*cli.App) *cobra.Command, stdin string, args ...string) Result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	app, out, errOut := NewApp(t, "test", stdin)
	cmd := newCommand(app)
	app.Setup(cmd)

	code := cli.Execute(context.Background(), app, cmd, args)
	return Result{Code: code, Stdout: out.String(), Stderr: errOut.String()}
}
