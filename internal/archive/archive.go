package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveResults moves the results directory to <parent>/archive/results-<timestamp>
// and returns the new path.
func ArchiveResults(resultsDir string) (string, error) {
	if _, err := os.Stat(resultsDir); os.IsNotExist(err) {
		return "", fmt.Errorf("results directory does not exist: %s", resultsDir)
	}

	archiveDir := filepath.Join(filepath.Dir(resultsDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, "results-"+now.Format("20060102-150405"))
	if _, err := os.Stat(archivePath); err == nil {
		// Same second as an earlier archive.
		archivePath = filepath.Join(archiveDir, "results-"+now.Format("20060102-150405.000000"))
	}

	if err := os.Rename(resultsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive results directory: %w", err)
	}
	return archivePath, nil
}
