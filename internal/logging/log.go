// Package logging wraps a process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger = newLogger(os.Stderr)
	mu     sync.Mutex
	file   *lumberjack.Logger
)

// Fields are structured key/value pairs attached to a log line.
type Fields = logrus.Fields

// Options configure Init.
type Options struct {
	Level string // debug, info, warn, error; empty means info
	File  string // rotating log file path; empty logs to stderr only
}

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(out)
	l.SetReportCaller(true)
	l.SetFormatter(&formatter.Formatter{
		NoColors:        true,
		TimestampFormat: "2006-01-02 15:04:05",
		CallerFirst:     true,
		CustomCallerFormatter: func(f *runtime.Frame) string {
			s := strings.Split(f.Function, ".")
			return fmt.Sprintf(" [%s:%d][%s()]", path.Base(f.File), f.Line, s[len(s)-1])
		},
	})
	return l
}

// Init applies level and output settings. It may be called more than once;
// a previously opened log file is closed.
func Init(opts Options) error {
	level := logrus.InfoLevel
	if opts.Level != "" {
		lv, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		level = lv
	}

	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		_ = file.Close()
		file = nil
	}

	writers := []io.Writer{os.Stderr}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   opts.File,
			LocalTime:  true,
			Compress:   true,
			MaxSize:    10,
			MaxAge:     30,
			MaxBackups: 3,
		}
		writers = append(writers, file)
	}

	logger.SetLevel(level)
	logger.SetOutput(io.MultiWriter(writers...))
	return nil
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Close releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Debug logs msg with fields at debug level.
func Debug(fields Fields, msg string) {
	logger.WithFields(fields).Debug(msg)
}

// Info logs msg with fields at info level.
func Info(fields Fields, msg string) {
	logger.WithFields(fields).Info(msg)
}

// Warn logs msg with fields at warn level.
func Warn(fields Fields, msg string) {
	logger.WithFields(fields).Warn(msg)
}

// Error logs msg with fields at error level.
func Error(fields Fields, msg string) {
	logger.WithFields(fields).Error(msg)
}
