// File: pkg/bundle/resolver.go
package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ResolveHeader reads one header file and returns its content with
// include-guard boilerplate and local include directives stripped. If the
// path is already in the processed set the header contributes nothing and an
// empty string is returned. The path is marked processed before the read so
// that any re-entrant reference within the same run is also suppressed.
//
// Only the guard directive lines themselves are dropped: lines between the
// guard markers pass through verbatim, including nested conditional blocks.
// A read failure is fatal to the run and propagates to the caller.
func ResolveHeader(path string, processed *ProcessedSet) (string, error) {
	if processed.Contains(path) {
		return "", nil
	}
	processed.Mark(path)

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open header %s: %w", path, err)
	}
	defer file.Close()

	var content strings.Builder
	reader := bufio.NewReader(file)
	inGuard := false

	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			switch {
			case isGuardOpenLine(line):
				inGuard = true
			case inGuard && isGuardCloseLine(line):
				inGuard = false
			case isLocalIncludeLine(line):
				// Local includes are resolved by the declared ordering.
			default:
				content.WriteString(line)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return "", fmt.Errorf("failed to read header %s: %w", path, readErr)
		}
	}

	return content.String(), nil
}
