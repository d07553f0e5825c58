package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Main запускает одиночную утилиту и завершает процесс с её кодом выхода
func Main(name string, newCommand func(*App) *cobra.Command) {
	app := NewApp(name, StdIO())
	cmd := newCommand(app)
	app.Setup(cmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Execute(ctx, app, cmd, os.Args[1:])
	stop()
	os.Exit(code)
}

// Execute выполняет команду с аргументами и возвращает код выхода.
// Ошибка печатается в stderr как есть, без префиксов
func Execute(ctx context.Context, app *App, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	cmd.SetIn(app.IO.In)
	cmd.SetOut(app.IO.Out)
	cmd.SetErr(app.IO.Err)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintln(app.IO.Err, err)
	return ExitCode(err)
}

// ExitCode извлекает код выхода из ошибки, по умолчанию 1
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}
