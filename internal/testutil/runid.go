package testutil

import (
	"fmt"
	"sync/atomic"
)

// FixedRunID always generates the same run ID.
type FixedRunID string

// Generate returns the ID, or "run-fixed" if it is empty.
func (f FixedRunID) Generate() string {
	if f == "" {
		return "run-fixed"
	}
	return string(f)
}

// RunIDSequence generates "<prefix>-0001", "<prefix>-0002", ...
//
// Thread-safety: safe for concurrent use.
type RunIDSequence struct {
	prefix string
	n      atomic.Int64
}

// NewRunIDSequence creates a sequence. An empty prefix becomes "run".
func NewRunIDSequence(prefix string) *RunIDSequence {
	if prefix == "" {
		prefix = "run"
	}
	return &RunIDSequence{prefix: prefix}
}

// Generate returns the next ID in the sequence.
func (s *RunIDSequence) Generate() string {
	return fmt.Sprintf("%s-%04d", s.prefix, s.n.Add(1))
}
