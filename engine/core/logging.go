package core

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevel mirrors the levels understood by the engine logger.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			singleton = &logger{newLogger(os.Stderr)}
		})
	return singleton
}

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "Editor 🛠️ ",
	})
	l.SetLevel(log.DebugLevel)
	return l
}

// LogSetLevel changes the minimum level written by the engine logger.
// Unknown levels fall back to info.
func LogSetLevel(level LogLevel) {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		LogWarn("unknown log level %q, falling back to info", level)
		lvl = log.InfoLevel
	}
	getLogger().SetLevel(lvl)
}

// LogSetOutput redirects the engine logger, mostly useful in tests.
func LogSetOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
