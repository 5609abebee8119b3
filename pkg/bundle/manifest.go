// File: pkg/bundle/manifest.go
package bundle

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ManifestName is the base name of the optional bundle manifest file looked
// up in the include root (".amalgo.yaml").
const ManifestName = ".amalgo"

// IncludeGroup is a set of system includes emitted behind a feature macro, so
// optional backends stay compile-time switchable in the bundled header.
type IncludeGroup struct {
	Macro    string   `mapstructure:"macro"`    // Preprocessor macro guarding the group.
	Comment  string   `mapstructure:"comment"`  // One-line comment above the group.
	Includes []string `mapstructure:"includes"` // Angle-bracket include targets.
}

// Manifest declares everything a bundle run needs beyond the filesystem: the
// library subdirectory, the top-level guard macro, the banner, the fixed
// prologue includes, and most importantly the ordered header list. The order
// is declared, never computed; the tool trusts it as-is.
type Manifest struct {
	Library        string         `mapstructure:"library"`
	Guard          string         `mapstructure:"guard"`
	Banner         string         `mapstructure:"banner"`
	SystemIncludes []string       `mapstructure:"system_includes"`
	FeatureGroups  []IncludeGroup `mapstructure:"feature_groups"`
	Headers        []string       `mapstructure:"headers"`
}

const defaultBanner = `/**
 * @file vulkan_stdpar.hpp
 * @brief Single-header bundle for Vulkan STD-Parallel library
 * @author Vulkan STD-Parallel Team
 * @version 1.0
 *
 * This is an automatically generated single-header version of the
 * Vulkan STD-Parallel library. Include this file to get access to
 * all GPU-accelerated standard parallel algorithms and unified_vector.
 *
 * Usage:
 *   #include <vulkan_stdpar.hpp>
 *
 *   vulkan_stdpar::unified_vector<int> data = {1, 2, 3, 4, 5};
 *   std::sort(data.begin(), data.end());
 */`

// DefaultManifest returns the built-in bundle declaration for the Vulkan
// STD-Parallel library, used when the include root carries no manifest file.
func DefaultManifest() Manifest {
	return Manifest{
		Library: "vulkan_stdpar",
		Guard:   "VULKAN_STDPAR_VULKAN_STDPAR_HPP",
		Banner:  defaultBanner,
		SystemIncludes: []string{
			"atomic", "vector", "memory", "shared_mutex", "mutex",
			"algorithm", "numeric", "functional", "type_traits", "cassert",
			"stdexcept", "string", "sstream", "chrono", "iterator",
			"initializer_list", "utility", "limits",
		},
		FeatureGroups: []IncludeGroup{
			{
				Macro:    "VULKAN_STDPAR_USE_SYCL",
				Comment:  "SYCL includes (optional)",
				Includes: []string{"sycl/sycl.hpp"},
			},
			{
				Macro:    "VULKAN_STDPAR_USE_VULKAN",
				Comment:  "Vulkan includes (optional)",
				Includes: []string{"vulkan/vulkan.h"},
			},
		},
		Headers: []string{
			// Core infrastructure first
			"core/exceptions.hpp",
			"core/profiling.hpp",
			"core/versioning_engine.hpp",
			"core/device_selection.hpp",
			// Containers
			"containers/unified_reference.hpp",
			"containers/unified_vector.hpp",
			// Iterators
			"iterators/unified_iterator.hpp",
			// Algorithms
			"algorithms/parallel_invoker.hpp",
		},
	}
}

// LoadManifest reads the optional ".amalgo.yaml" manifest from the include
// root and merges it over the built-in defaults. A missing manifest yields
// the defaults; a malformed one is an error.
func LoadManifest(rootDir string, logger *zap.Logger) (Manifest, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := DefaultManifest()

	v := viper.New()
	v.SetConfigName(ManifestName)
	v.SetConfigType("yaml")
	v.AddConfigPath(rootDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Debug("No bundle manifest found, using built-in defaults",
				zap.String("rootDir", rootDir))
			return m, nil
		}
		return Manifest{}, fmt.Errorf("failed to read bundle manifest: %w", err)
	}

	if err := v.Unmarshal(&m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse bundle manifest: %w", err)
	}

	logger.Debug("Loaded bundle manifest",
		zap.String("file", v.ConfigFileUsed()),
		zap.Int("declaredHeaders", len(m.Headers)))
	return m, nil
}

// Prologue renders the fixed text emitted before the first header section:
// banner, top-level guard open, plain system includes, and the
// feature-guarded include groups.
func (m Manifest) Prologue() string {
	var b strings.Builder

	if m.Banner != "" {
		b.WriteString(m.Banner)
		b.WriteString("\n")
	}
	b.WriteString("\n#ifndef " + m.Guard + "\n")
	b.WriteString("#define " + m.Guard + "\n")

	if len(m.SystemIncludes) > 0 {
		b.WriteString("\n// Standard library includes\n")
		for _, inc := range m.SystemIncludes {
			b.WriteString("#include <" + inc + ">\n")
		}
	}

	for _, group := range m.FeatureGroups {
		b.WriteString("\n")
		if group.Comment != "" {
			b.WriteString("// " + group.Comment + "\n")
		}
		b.WriteString("#ifdef " + group.Macro + "\n")
		for _, inc := range group.Includes {
			b.WriteString("#include <" + inc + ">\n")
		}
		b.WriteString("#endif\n")
	}

	b.WriteString("\n")
	return b.String()
}

// Epilogue renders the fixed text closing the top-level guard.
func (m Manifest) Epilogue() string {
	return "\n#endif // " + m.Guard + "\n"
}
