// File: pkg/bundle/scanner.go
package bundle

import (
	"regexp"
	"strings"
)

// includePattern captures the target of a quoted include directive at the
// start of a line. Directives with leading whitespace are intentionally not
// matched; the strict anchor is part of the scanner's contract.
var includePattern = regexp.MustCompile(`^#include\s+"([^"]+)"`)

// ScanIncludes returns the quoted local include targets found in the given
// header text, in line order. Duplicate directives produce duplicate entries;
// deduplication is the resolver's concern, not the scanner's. Angle-bracket
// system includes are ignored.
func ScanIncludes(text string) []string {
	var targets []string
	for _, line := range strings.Split(text, "\n") {
		if m := includePattern.FindStringSubmatch(line); m != nil {
			targets = append(targets, m[1])
		}
	}
	return targets
}
