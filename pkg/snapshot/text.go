// File: pkg/snapshot/text.go
package snapshot

import (
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// IsTextFile reports whether the whole file at filePath decodes as UTF-8.
// Any failure to stat or read the file, including a broken symlink or a
// permission error, yields false. Only regular files qualify.
func IsTextFile(filePath string, logger *zap.Logger) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		logger.Debug("Cannot stat file for classification", zap.String("filePath", filePath), zap.Error(err))
		return false
	}
	if !info.Mode().IsRegular() {
		logger.Debug("Not a regular file", zap.String("filePath", filePath), zap.Stringer("mode", info.Mode()))
		return false
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		logger.Debug("Cannot read file for classification", zap.String("filePath", filePath), zap.Error(err))
		return false
	}

	if !utf8.Valid(content) {
		logger.Debug("File is not valid UTF-8", zap.String("filePath", filePath))
		return false
	}
	return true
}
