// Package logging provides the structured logger shared by the CLI and
// the netease client: a thin logrus wrapper configured from an env var.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvLogLevel selects the logrus level; unset or unrecognized values fall
// back to Info.
const EnvLogLevel = "NCMDUMP_LOG_LEVEL"

// Log is the package-level logger every component logs through.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(levelFromEnv())
	return l
}

func levelFromEnv() logrus.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
