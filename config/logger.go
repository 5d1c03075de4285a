package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// CreateLogger creates a zerolog logger based on config, writing to stderr.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.NewLogger(os.Stderr)
}

// NewLogger is CreateLogger with an explicit destination.
// logging.format=json emits raw JSON lines, anything else a console view.
func (c *Config) NewLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	w := out
	if c.LogFormat() != "json" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "linkpred").Logger()
}
