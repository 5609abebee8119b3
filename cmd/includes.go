package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"amalgo/pkg/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// includesCmd lists the quoted local include directives of each declared
// header. The listing is purely textual; no ordering validation or
// dependency resolution is performed.
var includesCmd = &cobra.Command{
	Use:   "includes [root-dir]",
	Short: "List the local includes of each declared header",
	Long: `List the quoted local include directives found in each header of the
declared ordering, in line order, duplicates included. Headers that are
declared but absent on disk are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootDir := DefaultRootDir
		if len(args) > 0 {
			rootDir = args[0]
		}

		manifest, err := bundle.LoadManifest(rootDir, zap.L())
		if err != nil {
			return err
		}

		for _, rel := range manifest.Headers {
			headerPath := filepath.Join(rootDir, manifest.Library, filepath.FromSlash(rel))
			data, err := os.ReadFile(headerPath)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return fmt.Errorf("failed to read header %s: %w", headerPath, err)
			}

			fmt.Printf("%s\n", rel)
			for _, target := range bundle.ScanIncludes(string(data)) {
				fmt.Printf("  %s\n", target)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(includesCmd)
}
