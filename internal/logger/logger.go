package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config controls how run logs are written
type Config struct {
	// Level is a logrus level name; unknown names fall back to info
	Level string

	// Format is "text" or "json"
	Format string

	// Output defaults to stderr so stdout only carries the report
	Output io.Writer
}

// New builds the structured logger used by the simulator
func New(cfg *Config) *logrus.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	log := logrus.New()

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(parsed)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("Invalid log level, using INFO")
	}

	return log
}
