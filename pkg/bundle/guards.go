// File: pkg/bundle/guards.go
package bundle

import (
	"regexp"
	"strings"
)

// Guard symbol markers. A directive line is treated as include-guard
// boilerplate when the line contains one of these suffix-style markers
// anywhere, matching the whole line rather than the parsed symbol. This is
// deliberately permissive so that unusually formatted guards still get
// stripped.
var guardMarkers = []string{"_HPP", "_H"}

// localIncludePattern matches a quoted (project-relative) include directive
// at the start of a line. Angle-bracket system includes do not match.
var localIncludePattern = regexp.MustCompile(`^#include\s+"`)

// isGuardOpenLine reports whether the line opens include-guard boilerplate:
// an #ifndef or #define token together with a guard-style symbol marker.
func isGuardOpenLine(line string) bool {
	if !strings.Contains(line, "#ifndef") && !strings.Contains(line, "#define") {
		return false
	}
	for _, marker := range guardMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// isGuardCloseLine reports whether the line closes an include guard. Only
// consulted while the resolver's in-guard flag is set.
func isGuardCloseLine(line string) bool {
	return strings.Contains(line, "#endif")
}

// isLocalIncludeLine reports whether the line is a local include directive.
func isLocalIncludeLine(line string) bool {
	return localIncludePattern.MatchString(line)
}
