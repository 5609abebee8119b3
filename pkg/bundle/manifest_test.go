package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadManifestDefaults(t *testing.T) {
	root := t.TempDir()

	m, err := LoadManifest(root, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, DefaultManifest(), m)
	require.Equal(t, "vulkan_stdpar", m.Library)
	require.Equal(t, "VULKAN_STDPAR_VULKAN_STDPAR_HPP", m.Guard)
	require.Equal(t, "core/exceptions.hpp", m.Headers[0])
}

func TestLoadManifestFileOverride(t *testing.T) {
	root := t.TempDir()
	manifest := `library: mylib
headers:
  - util.hpp
  - api.hpp
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ".amalgo.yaml"), []byte(manifest), 0o644))

	m, err := LoadManifest(root, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "mylib", m.Library)
	require.Equal(t, []string{"util.hpp", "api.hpp"}, m.Headers)
	// Keys absent from the file keep their built-in defaults.
	require.Equal(t, "VULKAN_STDPAR_VULKAN_STDPAR_HPP", m.Guard)
	require.Equal(t, DefaultManifest().SystemIncludes, m.SystemIncludes)
}

func TestLoadManifestFeatureGroups(t *testing.T) {
	root := t.TempDir()
	manifest := `library: mylib
guard: MYLIB_SINGLE_HPP
system_includes: [vector]
feature_groups:
  - macro: MYLIB_USE_CUDA
    comment: CUDA includes (optional)
    includes: [cuda_runtime.h]
headers: [api.hpp]
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ".amalgo.yaml"), []byte(manifest), 0o644))

	m, err := LoadManifest(root, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, m.FeatureGroups, 1)
	require.Equal(t, "MYLIB_USE_CUDA", m.FeatureGroups[0].Macro)
	require.Equal(t, []string{"cuda_runtime.h"}, m.FeatureGroups[0].Includes)

	prologue := m.Prologue()
	require.Contains(t, prologue, "#ifdef MYLIB_USE_CUDA\n#include <cuda_runtime.h>\n#endif\n")
}

func TestLoadManifestMalformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".amalgo.yaml"), []byte("headers: [unclosed"), 0o644))

	_, err := LoadManifest(root, zap.NewNop())
	require.Error(t, err)
}

func TestManifestEpilogue(t *testing.T) {
	t.Parallel()

	m := Manifest{Guard: "MYLIB_SINGLE_HPP"}
	require.Equal(t, "\n#endif // MYLIB_SINGLE_HPP\n", m.Epilogue())
}
