package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

const (
	blockHeaderFormat = "\n\n\n%s\n\"\"\"\n"
	blockFooter       = "\n\"\"\"\n"
)

// AppendFileContent appends one delimited block to the summary document:
// the file's relative path, an opening quote fence, the raw contents and a
// closing fence. Both files are opened and closed within the call.
func AppendFileContent(outputPath, relPath, filePath string, logger *zap.Logger) (err error) {
	logger.Debug("Appending file content",
		zap.String("filePath", filePath),
		zap.String("relPath", relPath))

	outFile, err := os.OpenFile(outputPath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		logger.Error("Failed to open summary file for append", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to open summary file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			logger.Error("Failed to close summary file", zap.String("file", outputPath), zap.Error(closeErr))
			err = fmt.Errorf("failed to close summary file: %w", closeErr)
		}
	}()

	source, err := os.Open(filePath)
	if err != nil {
		logger.Error("Failed to open file", zap.String("filePath", filePath), zap.Error(err))
		return fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	defer source.Close()

	writer := bufio.NewWriter(outFile)

	if _, err := fmt.Fprintf(writer, blockHeaderFormat, relPath); err != nil {
		return fmt.Errorf("failed to write block header for %s: %w", relPath, err)
	}

	written, err := io.Copy(writer, source)
	if err != nil {
		logger.Error("Failed to copy file content",
			zap.String("filePath", filePath),
			zap.String("file", outputPath),
			zap.Error(err))
		return fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	if _, err := writer.WriteString(blockFooter); err != nil {
		return fmt.Errorf("failed to write block footer for %s: %w", relPath, err)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush summary file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Debug("Appended file content",
		zap.String("filePath", filePath),
		zap.Int64("contentSizeBytes", written))
	return nil
}
