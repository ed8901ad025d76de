package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options параметры логгера
type Options struct {
	Level     string
	LogToFile bool
	FileName  string
	// Verbose дублирует записи в stderr
	Verbose bool
}

// FileLogger реализация логгера поверх logrus
type FileLogger struct {
	file   *os.File
	logger *logrus.Logger
}

// NewFileLogger создает логгер. Без файла и без Verbose записи отбрасываются.
func NewFileLogger(opts Options) (*FileLogger, error) {
	var (
		writers []io.Writer
		file    *os.File
	)

	if opts.LogToFile {
		f, err := os.OpenFile(opts.FileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", opts.FileName, err)
		}
		file = f
		writers = append(writers, f)
	}
	if opts.Verbose {
		writers = append(writers, os.Stderr)
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	l := NewWriterLogger(out, opts.Level)
	l.file = file
	return l, nil
}

// NewWriterLogger создает логгер, пишущий в произвольный writer
func NewWriterLogger(w io.Writer, level string) *FileLogger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(parseLevel(level))
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})
	return &FileLogger{logger: logger}
}

// Debug логирует отладочное сообщение
func (l *FileLogger) Debug(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info логирует информационное сообщение
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Warning логирует предупреждение
func (l *FileLogger) Warning(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

// Error логирует ошибку
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// Success логирует успешное выполнение
func (l *FileLogger) Success(format string, args ...interface{}) {
	l.logger.WithField("status", "success").Infof(format, args...)
}

// Close закрывает логгер
func (l *FileLogger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
