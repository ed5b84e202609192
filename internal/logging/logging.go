// Package logging configures the toolkit's diagnostic logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger with the given level and format ("text" or
// "json") writing to out.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(logLevel)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	log.SetOutput(out)
	return log, nil
}
