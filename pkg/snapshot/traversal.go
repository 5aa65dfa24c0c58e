// File: pkg/snapshot/traversal.go
package snapshot

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// visitFunc is called once per visited directory with its depth below the root
// and the paths of its non-skipped files, in listing order.
type visitFunc func(dir string, depth int, files []string) error

// walkTree visits root and every non-skipped directory below it, top-down.
// A directory is visited before its subdirectories, and its files are reported
// with it. Skipped directories are pruned, so nothing below them is listed.
func walkTree(root string, gi SkipMatcher, logger *zap.Logger, visit visitFunc) error {
	return walkDirectory(root, 0, gi, logger, visit)
}

func walkDirectory(dir string, depth int, gi SkipMatcher, logger *zap.Logger, visit visitFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth == 0 {
			logger.Error("Failed to read root directory", zap.String("directory", dir), zap.Error(err))
			return fmt.Errorf("failed to read directory '%s': %w", dir, err)
		}
		logger.Warn("Failed to read directory, skipping it", zap.String("directory", dir), zap.Error(err))
		return nil
	}

	var files, subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if gi.ShouldSkip(name) {
			logger.Debug("Skipping entry", zap.String("directory", dir), zap.String("name", name))
			continue
		}

		entryPath := filepath.Join(dir, name)
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, entryPath)
		case entry.Type()&fs.ModeSymlink != 0 && isSymlinkToDir(entryPath):
			// Linked directories are neither descended into nor listed.
			logger.Debug("Not following directory symlink", zap.String("path", entryPath))
		default:
			files = append(files, entryPath)
		}
	}

	if err := visit(dir, depth, files); err != nil {
		return err
	}

	for _, subdir := range subdirs {
		if err := walkDirectory(subdir, depth+1, gi, logger, visit); err != nil {
			return err
		}
	}
	return nil
}

// isSymlinkToDir reports whether the symlink at path resolves to a directory.
// Broken links are treated as files.
func isSymlinkToDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// AggregateContents walks root, appends every text file to the summary document
// at summaryPath and returns a length record per appended file in discovery order.
func AggregateContents(root, summaryPath string, gi SkipMatcher, logger *zap.Logger) ([]LengthRecord, error) {
	var records []LengthRecord
	logger.Debug("Starting content aggregation", zap.String("root", root), zap.String("summaryFile", summaryPath))

	err := walkTree(root, gi, logger, func(dir string, depth int, files []string) error {
		for _, path := range files {
			if !IsTextFile(path, logger) {
				logger.Debug("Excluding non-text file", zap.String("filePath", path))
				continue
			}

			info, err := os.Stat(path)
			if err != nil {
				logger.Error("Failed to stat file", zap.String("filePath", path), zap.Error(err))
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			relPath := relativePath(root, path, logger)
			records = append(records, LengthRecord{Size: info.Size(), Path: relPath})

			if err := AppendFileContent(summaryPath, relPath, path, logger); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Error during content aggregation", zap.Error(err))
		return records, err
	}

	logger.Debug("Completed content aggregation", zap.Int("files", len(records)))
	return records, nil
}
