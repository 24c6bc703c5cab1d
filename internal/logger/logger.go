package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// TimeFormat формат времени в начале строки лога.
const TimeFormat = "2006-01-02 15:04:05"

// Options параметры логгера.
type Options struct {
	Dir     string    // каталог для файла <Name>.log
	Name    string    // имя логгера
	Level   string    // DEBUG, INFO, WARN, ERROR
	Console io.Writer // по умолчанию os.Stderr
}

// Logger именованный логгер: консоль + файл.
type Logger struct {
	zerolog.Logger
	file *os.File
}

var (
	mu     sync.Mutex
	active = map[string]*os.File{}
)

// New настраивает логгер с выводом в консоль и в новый файл (файл
// перезаписывается при каждом запуске). Повторный вызов с тем же именем
// закрывает ранее открытый файл, поэтому записи не дублируются.
func New(opts Options) (*Logger, error) {
	if opts.Name == "" {
		opts.Name = "evaluate"
	}
	if opts.Console == nil {
		opts.Console = os.Stderr
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}

	mu.Lock()
	defer mu.Unlock()

	if prev, ok := active[opts.Name]; ok {
		_ = prev.Close()
		delete(active, opts.Name)
	}

	file, err := os.Create(filepath.Join(opts.Dir, opts.Name+".log"))
	if err != nil {
		return nil, errors.Wrap(err, "create log file")
	}
	active[opts.Name] = file

	out := zerolog.MultiLevelWriter(
		lineWriter(opts.Console, opts.Name),
		lineWriter(file, opts.Name),
	)

	return &Logger{
		Logger: zerolog.New(out).Level(level).With().Timestamp().Logger(),
		file:   file,
	}, nil
}

// ParseLevel разбирает уровень логирования. Понимает и имена уровней
// Python logging (WARNING, CRITICAL). Пустая строка даёт INFO.
func ParseLevel(s string) (zerolog.Level, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	case "notset":
		return zerolog.TraceLevel, nil
	default:
		level, err := zerolog.ParseLevel(name)
		if err != nil || level == zerolog.NoLevel {
			return zerolog.NoLevel, errors.Errorf("unknown log level %q", s)
		}
		return level, nil
	}
}

// Close закрывает файл лога.
func (l *Logger) Close() error {
	mu.Lock()
	defer mu.Unlock()

	for name, f := range active {
		if f == l.file {
			delete(active, name)
		}
	}
	if err := l.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

// lineWriter строка вида "2006-01-02 15:04:05 | INFO | evaluate | message key=value".
func lineWriter(w io.Writer, name string) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: TimeFormat,
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("| %-5s |", strings.ToUpper(fmt.Sprint(i)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s | %v", name, i)
		},
	}
}
