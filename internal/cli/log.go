package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logger is the CLI's debug logger. It only emits below Warn level when
// --verbose is set.
var logger = logrus.New()

// setupLogging points the logger at w and picks the level from verbose.
func setupLogging(w io.Writer, verbose bool) {
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}

// VerboseLog prints a debug message to stderr only when verbose mode is
// enabled.
func VerboseLog(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
