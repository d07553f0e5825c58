package tail

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"coreutils/internal/cli"
	"coreutils/internal/textio"
)

// follower дописывает в вывод данные, которые появляются в отслеживаемых файлах
type follower struct {
	app     *cli.App
	w       *bufio.Writer
	watcher *fsnotify.Watcher
	headers bool
	offsets map[string]int64 // ключ — очищенный путь
	names   map[string]string
	current string
}

func newFollower(app *cli.App, w *bufio.Writer, headers bool) (*follower, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &follower{
		app:     app,
		w:       w,
		watcher: watcher,
		headers: headers,
		offsets: make(map[string]int64),
		names:   make(map[string]string),
	}, nil
}

// watch подписывается на изменения файла до того, как он будет прочитан
func (f *follower) watch(name string) error {
	return f.watcher.Add(name)
}

// track запоминает, до какого места файл уже выведен
func (f *follower) track(name string, offset int64) {
	key := filepath.Clean(name)
	f.offsets[key] = offset
	f.names[key] = name
	f.current = key
}

func (f *follower) Close() error {
	return f.watcher.Close()
}

// loop обрабатывает события до отмены контекста
func (f *follower) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) {
				continue
			}
			if err := f.readAppended(filepath.Clean(ev.Name)); err != nil {
				f.w.Flush()
				f.app.FileError(ev.Name, err)
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			f.app.Log.Warn("watch failed", "err", err)
		}
	}
}

// readAppended выводит данные файла после запомненного смещения
func (f *follower) readAppended(key string) error {
	offset, ok := f.offsets[key]
	if !ok {
		return nil
	}
	name := f.names[key]

	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() < offset {
		f.app.Log.Debug("file truncated", "file", name)
		offset = 0
	}
	if info.Size() == offset {
		return nil
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	buf, err := io.ReadAll(file)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if f.headers && key != f.current {
		header(f.w, name, false)
	}
	f.current = key
	f.offsets[key] = offset + int64(len(buf))
	if _, err := f.w.WriteString(textio.Lossy(buf)); err != nil {
		return err
	}
	return f.w.Flush()
}
