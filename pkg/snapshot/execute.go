// File: pkg/snapshot/execute.go
package snapshot

import (
	"fmt"
	"path/filepath"
	"time"

	"codesnap/pkg/ignore"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// RunSnapshot writes the summary and lengths documents for args.Root.
//
// The run has two phases. The first walks the tree and writes the outline to a
// freshly truncated summary document. The second walks again, appends every
// text file to the summary and records its size; the ranked sizes are then
// written to the lengths document. Generated names always contain the run
// identifier, so neither phase picks up output from this or an earlier run.
func RunSnapshot(args Arguments, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := args.validate(); err != nil {
		logger.Error("Invalid snapshot arguments", zap.Error(err))
		return Result{}, err
	}
	startTime := time.Now()

	root, err := filepath.Abs(args.Root)
	if err != nil {
		logger.Error("Failed to resolve root directory", zap.String("root", args.Root), zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	outputDir, err := filepath.Abs(args.OutputDir)
	if err != nil {
		logger.Error("Failed to resolve output directory", zap.String("outputDir", args.OutputDir), zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute output path: %w", err)
	}
	if err := ensureDirectory(outputDir, logger); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	now := args.Now
	if now == nil {
		now = time.Now
	}
	summaryName, lengthsName := OutputFilenames(args.BaseName, args.Identifier, now())
	result := Result{
		SummaryPath: filepath.Join(outputDir, summaryName),
		LengthsPath: filepath.Join(outputDir, lengthsName),
	}

	logger.Info("Starting snapshot",
		zap.String("root", root),
		zap.String("summaryFile", result.SummaryPath),
		zap.String("lengthsFile", result.LengthsPath))

	gi := ignore.NewMatcher(args.Identifier, args.SkipNames, logger)

	// Phase 1: the tree outline alone, truncating any existing document.
	treeContent, err := GenerateTree(root, gi, logger)
	if err != nil {
		return result, fmt.Errorf("failed to generate tree structure: %w", err)
	}
	if err := writeToFile(result.SummaryPath, []byte(treeContent), 0644, logger); err != nil {
		return result, fmt.Errorf("failed to write tree structure: %w", err)
	}

	// Phase 2: contents appended file by file, sizes collected for ranking.
	records, err := AggregateContents(root, result.SummaryPath, gi, logger)
	if err != nil {
		return result, fmt.Errorf("failed to aggregate file contents: %w", err)
	}

	total, err := WriteLengthsFile(result.LengthsPath, records, logger)
	if err != nil {
		return result, err
	}
	result.Files = len(records)
	result.TotalLength = total

	logger.Info("Snapshot completed",
		zap.Int("totalFiles", result.Files),
		zap.Int64("totalLength", total),
		zap.String("totalSize", humanize.Bytes(uint64(total))),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}
