package export

import (
	"fmt"
	"os"
	"path/filepath"

	"insiderwatch/internal/logger"
)

// WriteFile writes a CSV document to disk, creating parent directories as
// needed. Used by the one-shot export mode.
func WriteFile(path, document string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	logger.Infof("CSV export written: %s", path)
	return nil
}
