package bundle

import (
	"reflect"
	"testing"
)

func TestScanIncludes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "quoted includes in line order",
			text: "#include \"core/a.hpp\"\nint f();\n#include \"core/b.hpp\"\n",
			want: []string{"core/a.hpp", "core/b.hpp"},
		},
		{
			name: "duplicates are preserved",
			text: "#include \"x.hpp\"\n#include \"x.hpp\"\n",
			want: []string{"x.hpp", "x.hpp"},
		},
		{
			name: "angle bracket includes are ignored",
			text: "#include <vector>\n#include \"local.hpp\"\n#include <string>\n",
			want: []string{"local.hpp"},
		},
		{
			name: "indented directive is not matched",
			text: "  #include \"indented.hpp\"\n#include \"flush.hpp\"\n",
			want: []string{"flush.hpp"},
		},
		{
			name: "no includes",
			text: "int f();\n// #comment\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ScanIncludes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ScanIncludes() = %v, want %v", got, tt.want)
			}
		})
	}
}
