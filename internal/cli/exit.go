package cli

import (
	"errors"
	"fmt"
	"io/fs"
)

// ExitError передаёт ненулевой код выхода из RunE без вызова os.Exit внутри команды
type ExitError struct {
	Code int
	Err  error
}

// Error возвращает текст вложенной ошибки
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap возвращает вложенную ошибку
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Fail оборачивает ошибку в ExitError с кодом 1
func Fail(err error) error {
	return &ExitError{Code: 1, Err: err}
}

// FileFail — фатальная ошибка по файлу в формате "имя: ошибка"
func FileFail(name string, err error) error {
	return Fail(fmt.Errorf("%s: %w", name, Cause(err)))
}

// Cause убирает из ошибки файловой системы операцию и путь, которые уже есть в сообщении
func Cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
