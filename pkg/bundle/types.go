// File: pkg/bundle/types.go
package bundle

// Arguments holds the configuration options for a bundle run.
type Arguments struct {
	RootDir string // Include directory the declared header paths resolve under.
	Output  string // Destination path for the amalgamated header; empty selects "<RootDir>/<library>.hpp".
}

// ProcessedSet tracks the header paths already emitted during one bundle run.
// A fresh set is created per run; once a path is marked it contributes no
// further text, no matter how often it is referenced again.
type ProcessedSet struct {
	seen map[string]struct{}
}

// NewProcessedSet returns an empty ProcessedSet.
func NewProcessedSet() *ProcessedSet {
	return &ProcessedSet{seen: make(map[string]struct{})}
}

// Contains reports whether the path has already been emitted.
func (s *ProcessedSet) Contains(path string) bool {
	_, ok := s.seen[path]
	return ok
}

// Mark records the path as emitted.
func (s *ProcessedSet) Mark(path string) {
	s.seen[path] = struct{}{}
}

// Len returns the number of emitted paths.
func (s *ProcessedSet) Len() int {
	return len(s.seen)
}
