package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger writes text logs to w; stdout stays reserved for Org output.
func newLogger(w io.Writer, level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(parseLevel(level))
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
