// Package ignore decides which directory entries are left out of a snapshot.
package ignore

import (
	"strings"

	"go.uber.org/zap"
)

// HiddenMarker is the leading character of hidden files and directories.
const HiddenMarker = "."

// Reason identifies the rule that excluded an entry.
type Reason int

const (
	ReasonNone       Reason = iota // Entry is kept.
	ReasonHidden                   // Name starts with HiddenMarker.
	ReasonIdentifier               // Name contains the run identifier.
	ReasonSkipSet                  // Name is listed in the skip set.
)

// String returns a short label suitable for log fields.
func (r Reason) String() string {
	switch r {
	case ReasonHidden:
		return "hidden"
	case ReasonIdentifier:
		return "identifier"
	case ReasonSkipSet:
		return "skip-set"
	default:
		return "none"
	}
}

// Matcher holds the skip configuration for one run.
type Matcher struct {
	identifier string              // Run identifier embedded in generated file names.
	names      map[string]struct{} // Exact names to exclude.
	logger     *zap.Logger         // Logger for debug information.
}

// NewMatcher builds a Matcher from the run identifier and the exact-match skip names.
// An empty identifier disables the identifier rule instead of matching every name.
func NewMatcher(identifier string, names []string, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return &Matcher{
		identifier: identifier,
		names:      set,
		logger:     logger,
	}
}

// ShouldSkip reports whether the entry called name must be excluded.
func (m *Matcher) ShouldSkip(name string) bool {
	skip, _ := m.MatchWithReason(name)
	return skip
}

// MatchWithReason applies the rules in order and stops at the first one that matches:
// hidden marker, identifier substring, exact skip-set entry.
func (m *Matcher) MatchWithReason(name string) (bool, Reason) {
	reason := ReasonNone
	switch {
	case strings.HasPrefix(name, HiddenMarker):
		reason = ReasonHidden
	case m.identifier != "" && strings.Contains(name, m.identifier):
		reason = ReasonIdentifier
	default:
		if _, ok := m.names[name]; ok {
			reason = ReasonSkipSet
		}
	}

	if reason == ReasonNone {
		return false, ReasonNone
	}
	m.logger.Debug("Entry matches skip rule", zap.String("name", name), zap.Stringer("reason", reason))
	return true, reason
}
