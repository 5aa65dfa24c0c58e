package main

import (
	"log"
	"os"
	"strings"

	"codesnap/cmd"
	"codesnap/pkg/logging"
	"codesnap/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, "codesnap", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		syncLogger(logging.L())
		logging.L().Fatal("codesnap execution failed", zap.Error(err))
	}
	syncLogger(logging.L())
}

// syncLogger flushes logger when stderr can be synced. Pipes and character
// devices other than terminals reject fsync with EINVAL.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
