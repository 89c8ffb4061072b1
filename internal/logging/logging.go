// Package logging sets up the activity log. User-facing output goes to
// the terminal; the log file keeps a record of what changed and when.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arijitsen/examdesk/internal/config"
)

// Open builds a zap logger writing JSON lines to examdesk.log in the
// data directory.
func Open() (*zap.Logger, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	logPath := filepath.Join(dir, "examdesk.log")
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
