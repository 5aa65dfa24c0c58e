// File: pkg/snapshot/tree.go
package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// GenerateTree renders the directory outline of root. Each directory is written
// as its base name with a trailing slash, followed by its files one level deeper.
// Indentation is IndentWidth spaces per level, with the root at level zero.
func GenerateTree(root string, gi SkipMatcher, logger *zap.Logger) (string, error) {
	var treeBuilder strings.Builder

	err := walkTree(root, gi, logger, func(dir string, depth int, files []string) error {
		indent := strings.Repeat(" ", IndentWidth*depth)
		subindent := strings.Repeat(" ", IndentWidth*(depth+1))

		treeBuilder.WriteString(fmt.Sprintf("%s%s/\n", indent, directoryLabel(dir)))
		for _, file := range files {
			treeBuilder.WriteString(subindent + filepath.Base(file) + "\n")
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to generate tree structure", zap.String("root", root), zap.Error(err))
		return "", err
	}

	return treeBuilder.String(), nil
}

// directoryLabel returns the base name of dir without a trailing separator,
// so the filesystem root renders as "/" rather than "//".
func directoryLabel(dir string) string {
	return strings.TrimRight(filepath.Base(dir), string(filepath.Separator))
}
