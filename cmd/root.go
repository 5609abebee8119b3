package cmd

import (
	"fmt"

	"amalgo/pkg/bundle"
	"amalgo/pkg/logging"
	"amalgo/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DefaultRootDir is the include directory used when no positional argument
// overrides it.
const DefaultRootDir = "include"

var debug bool

// RootCmd is the base command. Invoked without a subcommand it runs the
// bundler: an optional first argument overrides the include root, an
// optional second argument overrides the output path.
var RootCmd = &cobra.Command{
	Use:   "amalgo [root-dir] [output]",
	Short: "Amalgo merges a header-only library into a single header",
	Long: `Amalgo bundles a multi-file header-only library into one distributable
header file, preserving the declared dependency order, stripping per-header
include guards and local include directives, and wrapping the result in a
single top-level guard.`,
	Args: cobra.MaximumNArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(debug, "Amalgo", version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		bundleArgs := bundle.Arguments{RootDir: DefaultRootDir}
		if len(args) > 0 {
			bundleArgs.RootDir = args[0]
		}
		if len(args) > 1 {
			bundleArgs.Output = args[1]
		}

		fmt.Printf("Include directory: %s\n", bundleArgs.RootDir)
		if bundleArgs.Output != "" {
			fmt.Printf("Output file: %s\n", bundleArgs.Output)
		}
		fmt.Println()

		return bundle.Run(bundleArgs, zap.L())
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command and returns any error to the caller.
func Execute() error {
	return RootCmd.Execute()
}
