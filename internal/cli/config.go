package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName — имя каталога конфигурации
	AppName = "coreutils"
	// EnvPrefix — префикс переменных окружения: COREUTILS_HEAD_LINES=5
	EnvPrefix = "COREUTILS"
)

// ConfigDir возвращает каталог конфигурации ($XDG_CONFIG_HOME/coreutils)
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// LoadConfig читает конфигурацию. Пустой path означает файл по умолчанию,
// отсутствие которого не считается ошибкой
func LoadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("color", "auto")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return v, nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// mutuallyExclusiveAnnotation — аннотация, под которой cobra хранит группы MarkFlagsMutuallyExclusive
const mutuallyExclusiveAnnotation = "cobra_annotation_mutually_exclusive"

// excludedByCommandLine сообщает, задан ли в командной строке флаг из одной группы с f
func excludedByCommandLine(flags *pflag.FlagSet, f *pflag.Flag) bool {
	for _, group := range f.Annotations[mutuallyExclusiveAnnotation] {
		for _, name := range strings.Fields(group) {
			if other := flags.Lookup(name); other != nil && other.Changed {
				return true
			}
		}
	}
	return false
}

// ApplyConfig переносит значения "<section>.<flag>" из конфигурации во флаги, не заданные в командной строке.
// Флаг при этом не помечается как Changed, поэтому группы взаимоисключающих флагов не срабатывают.
// Флаг пропускается, если в командной строке задан другой флаг из его взаимоисключающей группы
func ApplyConfig(v *viper.Viper, section string, flags *pflag.FlagSet) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || excludedByCommandLine(flags, f) {
			return
		}
		key := section + "." + f.Name
		if !v.IsSet(key) {
			return
		}
		var err error
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			err = sv.Replace(v.GetStringSlice(key))
		} else {
			err = f.Value.Set(v.GetString(key))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("config %s: %w", key, err))
		}
	})
	return errors.Join(errs...)
}
