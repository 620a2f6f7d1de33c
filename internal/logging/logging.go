package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger      *logrus.Logger
	loggerMutex sync.RWMutex
)

// Setup builds the process logger from the configured level and format
// ("text" or "json") and installs it as the shared logger.
func Setup(level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	SetLogger(l)
	if err != nil && level != "" {
		l.WithField("level", level).Warn("unknown log level, falling back to info")
	}
	return l
}

func SetLogger(l *logrus.Logger) {
	loggerMutex.Lock()
	logger = l
	loggerMutex.Unlock()
}

// GetLogger returns the shared logger, or the logrus standard logger when
// Setup has not run yet (tests).
func GetLogger() *logrus.Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()

	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}

// For returns an entry tagged with the calling module's name.
func For(module string) *logrus.Entry {
	return GetLogger().WithField("module", module)
}
