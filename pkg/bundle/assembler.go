// File: pkg/bundle/assembler.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Run is the entry point for the bundle package. It loads the manifest for
// the include root, assembles the full document in memory, and writes it to
// the output path in a single operation, so a failed run never leaves a
// half-written file behind.
func Run(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	rootDir, err := filepath.Abs(args.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve include directory: %w", err)
	}
	logger.Info("Starting bundle run", zap.String("rootDir", rootDir))

	manifest, err := LoadManifest(rootDir, logger)
	if err != nil {
		logger.Error("Failed to load bundle manifest", zap.Error(err))
		return err
	}

	output := args.Output
	if output == "" {
		output = filepath.Join(rootDir, manifest.Library+".hpp")
	}

	document, err := Assemble(rootDir, manifest, logger)
	if err != nil {
		logger.Error("Failed to assemble bundle", zap.Error(err))
		return err
	}

	if err := ensureDirectory(filepath.Dir(output), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(output, []byte(document), 0644); err != nil {
		logger.Error("Failed to write bundled header", zap.String("output", output), zap.Error(err))
		return fmt.Errorf("failed to write bundled header: %w", err)
	}

	fmt.Printf("\nBundled headers written to: %s\n", output)
	fmt.Printf("Total size: %d bytes\n", len(document))
	logger.Info("Bundle run completed",
		zap.String("output", output),
		zap.Int("sizeBytes", len(document)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// Assemble produces one bundled document: manifest prologue, then for each
// declared header path, in declared order, a section marker followed by the
// resolved content, then the epilogue. Declared-but-absent headers are
// tolerated and skipped silently; headers whose resolved content is empty
// after trimming contribute no section at all.
func Assemble(rootDir string, manifest Manifest, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var document strings.Builder
	document.WriteString(manifest.Prologue())

	processed := NewProcessedSet()
	for _, rel := range manifest.Headers {
		headerPath := filepath.Join(rootDir, manifest.Library, filepath.FromSlash(rel))
		if _, err := os.Stat(headerPath); err != nil {
			logger.Debug("Declared header not present, skipping",
				zap.String("header", rel),
				zap.String("path", headerPath))
			continue
		}

		fmt.Printf("Processing %s...\n", rel)
		content, err := ResolveHeader(headerPath, processed)
		if err != nil {
			logger.Error("Failed to resolve header",
				zap.String("header", rel),
				zap.Error(err))
			return "", err
		}
		if strings.TrimSpace(content) == "" {
			logger.Debug("Header contributed no content", zap.String("header", rel))
			continue
		}

		document.WriteString(fmt.Sprintf("\n// ========== %s ==========\n\n", rel))
		document.WriteString(content)
		logger.Debug("Appended header section",
			zap.String("header", rel),
			zap.Int("contentBytes", len(content)))
	}

	document.WriteString(manifest.Epilogue())
	logger.Debug("Assembled bundle document",
		zap.Int("processedHeaders", processed.Len()),
		zap.Int("documentBytes", document.Len()))
	return document.String(), nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
