// Package logger builds the logrus loggers used across the game.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// New returns a text logger writing to stderr at the named level
func New(level string) (*log.Logger, error) {
	return NewWithOutput(level, os.Stderr)
}

// NewWithOutput is New with an explicit destination
func NewWithOutput(level string, out io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", level, err)
	}
	l := log.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	return l, nil
}

// Component returns an entry tagged with the component name
func Component(l log.FieldLogger, name string) *log.Entry {
	return l.WithField("component", name)
}

// NewRunID returns a fresh identifier for one play-through
func NewRunID() string {
	return uuid.NewString()
}
