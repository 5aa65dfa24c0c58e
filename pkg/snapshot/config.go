// File: pkg/snapshot/config.go
package snapshot

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyIdentifier is returned when a run has no identifier. Without one the
// output documents would not be excluded from their own traversal.
var ErrEmptyIdentifier = errors.New("snapshot identifier must not be empty")

// ErrEmptyBaseName is returned when a run has no output base name.
var ErrEmptyBaseName = errors.New("snapshot base name must not be empty")

const (
	// IndentWidth is the number of spaces per depth level in the tree outline.
	IndentWidth = 4

	// TimestampLayout formats the run timestamp embedded in output file names.
	TimestampLayout = "2006_01_02_15_04_05"

	// DefaultBaseName prefixes every generated output file.
	DefaultBaseName = "output"

	// DefaultIdentifier is embedded in output file names so later runs skip them.
	DefaultIdentifier = "29ph50JZ7"
)

// DefaultSkipNames are file or directory names excluded by exact match.
var DefaultSkipNames = []string{"Vm.json", "VmSafe.json"}

// Arguments holds the configuration options for one snapshot run.
type Arguments struct {
	Root       string           // Directory to snapshot; empty means the working directory.
	OutputDir  string           // Directory receiving both documents; empty means the working directory.
	BaseName   string           // Prefix of the generated file names.
	Identifier string           // Run identifier embedded in names and excluded from traversal.
	SkipNames  []string         // Exact file or directory names to exclude.
	Now        func() time.Time // Clock used for the file name timestamp; nil means time.Now.
}

// SkipMatcher decides whether a directory entry is left out of the snapshot.
type SkipMatcher interface {
	ShouldSkip(name string) bool
}

// LengthRecord pairs a file's byte size with its path relative to the root.
type LengthRecord struct {
	Size int64
	Path string
}

// Result describes the documents produced by a run.
type Result struct {
	SummaryPath string // Tree outline followed by every text file's contents.
	LengthsPath string // Ranked file sizes with their total.
	Files       int    // Number of files embedded in the summary.
	TotalLength int64  // Sum of all recorded sizes.
}

func (a Arguments) validate() error {
	if strings.TrimSpace(a.Identifier) == "" {
		return ErrEmptyIdentifier
	}
	if strings.TrimSpace(a.BaseName) == "" {
		return ErrEmptyBaseName
	}
	return nil
}
