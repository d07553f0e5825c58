// Command coreutils запускает любую из утилит как подкоманду: coreutils head -n 3 file.
// При запуске через ссылку с именем утилиты (ln -s coreutils head) работает как эта утилита
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"

	"coreutils/internal/cli"
)

// Version задаётся при сборке: -ldflags "-X main.Version=v1.0.0"
var Version = "dev"

func main() {
	if tool, ok := lookup(filepath.Base(os.Args[0])); ok {
		cli.Main(tool.name, tool.newCommand)
		return
	}

	app := cli.NewApp(cli.AppName, cli.StdIO())
	root := newRootCommand(app)

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
