package main

import (
	"os"
	"strings"

	"amalgo/cmd"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	// Execute the root command; logging is configured by the command's
	// PersistentPreRunE before any work happens.
	if err := cmd.Execute(); err != nil {
		zap.L().Error("amalgo execution failed", zap.Error(err))
		syncLogger(zap.L())
		os.Exit(1)
	}

	syncLogger(zap.L())
}

// syncLogger flushes the logger, but only when stderr is a terminal or a
// regular file: syncing a pipe or /dev/null fails with EINVAL on some
// platforms and would drown the real exit status in noise.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			os.Stderr.WriteString("logger sync failed: " + err.Error() + "\n")
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
