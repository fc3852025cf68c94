package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apex/log"

	"github.com/CobSammich/nba-scores-cli/internal/logging"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"json", `"message":"poll complete"`, false},
		{"text", "poll complete", false},
		{"cli", "poll complete", false},
		{"discard", "", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := logging.New("info", tt.format, &buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			logger.WithField("games", 3).Info("poll complete")

			if tt.want == "" {
				if buf.Len() != 0 {
					t.Errorf("Expected no output, got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New("warn", "text", &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("Info entry should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Warn entry should be written")
	}

	if _, err := logging.New("loud", "text", &buf); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestSetup_File(t *testing.T) {
	previous := log.Log
	defer func() { log.Log = previous }()

	path := filepath.Join(t.TempDir(), "nba.log")
	closer, err := logging.Setup("debug", "json", path)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.WithField("block", 2).Debug("interpret failed")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "interpret failed") {
		t.Errorf("Log file missing entry: %q", data)
	}
}
