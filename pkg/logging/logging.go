package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const prefix = "raytracer"

var (
	once      sync.Once
	singleton *log.Logger
)

// New creates a logger writing to w at the named level
// (debug, info, warn or error).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
		Level:           lvl,
	})
	return l, nil
}

// Default returns the process-wide logger, writing to stderr at info level
func Default() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          prefix,
			Level:           log.InfoLevel,
		})
	})
	return singleton
}

// SetLevel changes the level of the process-wide logger
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Default().SetLevel(lvl)
	return nil
}

// Warnings adapts a logger so Printf-style reports from the scene and
// loader packages are emitted at warn level.
func Warnings(l *log.Logger) *LevelLogger {
	return &LevelLogger{l: l, level: log.WarnLevel}
}

// Infos adapts a logger so Printf-style reports are emitted at info level
func Infos(l *log.Logger) *LevelLogger {
	return &LevelLogger{l: l, level: log.InfoLevel}
}

// LevelLogger implements core.Logger on top of a charmbracelet logger,
// logging every line at a fixed level
type LevelLogger struct {
	l     *log.Logger
	level log.Level
}

func (ll *LevelLogger) Printf(format string, args ...interface{}) {
	ll.l.Log(ll.level, strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
