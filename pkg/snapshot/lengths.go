// File: pkg/snapshot/lengths.go
package snapshot

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// RankLengths returns a copy of records sorted by size, largest first, and
// the sum of all sizes. Records of equal size keep their discovery order.
func RankLengths(records []LengthRecord) ([]LengthRecord, int64) {
	ranked := make([]LengthRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Size > ranked[j].Size
	})

	var total int64
	for _, r := range ranked {
		total += r.Size
	}
	return ranked, total
}

// FormatLengths renders the lengths document: a total header followed by one
// path, size and blank line block per record.
func FormatLengths(ranked []LengthRecord, total int64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total Length: %d\n\n", total))
	for _, r := range ranked {
		b.WriteString(fmt.Sprintf("%s\n%d\n\n", r.Path, r.Size))
	}
	return b.String()
}

// WriteLengthsFile ranks records and writes the lengths document in one write.
// It returns the total of all sizes.
func WriteLengthsFile(outputPath string, records []LengthRecord, logger *zap.Logger) (int64, error) {
	ranked, total := RankLengths(records)
	if err := writeToFile(outputPath, []byte(FormatLengths(ranked, total)), 0644, logger); err != nil {
		return 0, fmt.Errorf("failed to write lengths file: %w", err)
	}
	return total, nil
}
