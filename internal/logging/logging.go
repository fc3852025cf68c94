// Package logging configures the process-wide apex/log logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

// NewHandler returns the apex/log handler for a format name
func NewHandler(format string, w io.Writer) (log.Handler, error) {
	switch format {
	case "cli", "":
		return cli.New(w), nil
	case "text":
		return text.New(w), nil
	case "json":
		return json.New(w), nil
	case "discard":
		return discard.New(), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// New builds a logger writing to w
func New(level, format string, w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	handler, err := NewHandler(format, w)
	if err != nil {
		return nil, err
	}

	return &log.Logger{Handler: handler, Level: lvl}, nil
}

// Setup installs the global logger. With a file path, output is appended
// to that file instead of stderr so it does not tear the terminal
// scoreboard; the returned closer releases it.
func Setup(level, format, file string) (io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger, err := New(level, format, w)
	if err != nil {
		closer.Close()
		return nil, err
	}

	log.Log = logger
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
