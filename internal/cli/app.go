// Package cli содержит общую обвязку утилит: потоки ввода-вывода, логгер,
// конфигурацию через viper и запуск cobra-команд с кодом выхода.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// IO — потоки, с которыми работает утилита
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO возвращает стандартные потоки процесса
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// App — окружение одной утилиты
type App struct {
	Name   string
	IO     IO
	Log    *log.Logger
	Config *viper.Viper
	Now    func() time.Time

	configPath string
	debug      bool
	color      string
}

// NewApp создаёт окружение с пустой конфигурацией и логгером уровня warn
func NewApp(name string, streams IO) *App {
	return &App{
		Name:   name,
		IO:     streams,
		Log:    NewLogger(streams.Err, name),
		Config: viper.New(),
		Now:    time.Now,
	}
}

// FileError печатает ошибку по конкретному файлу в формате "имя: ошибка"
func (a *App) FileError(name string, err error) {
	a.Log.Debug("input failed", "file", name, "err", err)
	fmt.Fprintf(a.IO.Err, "%s: %v\n", name, Cause(err))
}

// Setup вешает на корневую команду общие флаги и загрузку конфигурации.
// Значения из конфигурации применяются к флагам запущенной команды, которые не заданы явно
func (a *App) Setup(root *cobra.Command) {
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/coreutils/config.toml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.color, "color", "", "colorize output: auto, always or never")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.prepare(cmd)
	}
	root.SilenceUsage = true
	root.SilenceErrors = true
}

func (a *App) prepare(cmd *cobra.Command) error {
	v, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.color != "" {
		v.Set("color", a.color)
	}
	switch c := v.GetString("color"); c {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid value %q for --color: possible values are auto, always, never", c)
	}
	a.Config = v
	if a.debug || v.GetBool("debug") {
		a.Log.SetLevel(log.DebugLevel)
	}
	if used := v.ConfigFileUsed(); used != "" {
		a.Log.Debug("config loaded", "path", used)
	}
	return ApplyConfig(v, cmd.Name(), cmd.Flags())
}
