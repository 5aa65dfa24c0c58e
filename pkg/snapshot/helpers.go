// File: pkg/snapshot/helpers.go
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// OutputFilenames returns the summary and lengths file names for a run started at t.
func OutputFilenames(baseName, identifier string, t time.Time) (summary, lengths string) {
	stamp := t.Format(TimestampLayout)
	summary = fmt.Sprintf("%s_%s_%s_summary.txt", baseName, stamp, identifier)
	lengths = fmt.Sprintf("%s_%s_%s_lengths.txt", baseName, stamp, identifier)
	return summary, lengths
}

// relativePath returns path relative to root, falling back to path itself.
func relativePath(root, path string, logger *zap.Logger) string {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		logger.Warn("Unable to determine relative path, using absolute path",
			zap.String("filePath", path),
			zap.String("root", root),
			zap.Error(err))
		return path
	}
	return relPath
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile creates or truncates path and writes data to it.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
