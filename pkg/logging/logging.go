// Package logging builds the command-line logger.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	JSON       bool   `mapstructure:"json"`
}

// DefaultOptions logs warnings and above to stderr
func DefaultOptions() Options {
	return Options{
		Level:      "warn",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger writing to stderr, or to a rotating file when
// opts.File is set. The returned closer releases the file.
func New(opts Options, stderr io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: opts.File == "", FullTimestamp: true})
	}

	if opts.File == "" {
		log.SetOutput(stderr)
		return log, nopCloser{}, nil
	}

	sink := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	log.SetOutput(sink)
	return log, sink, nil
}

// WithRun tags every entry with a fresh run id and returns both
func WithRun(log logrus.FieldLogger) (logrus.FieldLogger, string) {
	id := uuid.NewString()
	return log.WithField("run", id), id
}
