package manifest

import (
	"bytes"
	"testing"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/artifact"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/resolver"
)

func dependency(coord, path string) *resolver.Dependency {
	id, v, _ := artifact.ParseCoordinate(coord)
	return &resolver.Dependency{Identity: id, Version: v, Path: path}
}

func TestEmitter_Emit(t *testing.T) {
	native := dependency("org.lwjgl:lwjgl:3.3.1:natives-linux", "org/lwjgl/lwjgl-3.3.1-natives-linux.jar")
	native.Native = true
	withURL := dependency("org.lib:core:2.0.0", "org/lib/core-2.0.0.jar")
	withURL.URL = "https://libraries.example.net/org/lib/core-2.0.0.jar"

	tests := []struct {
		name string
		deps []*resolver.Dependency
		want string
	}{
		{
			name: "empty",
			deps: []*resolver.Dependency{},
			want: "# mclib-extractor manifest: version 1.0\nLIBRARIES\n",
		},
		{
			name: "single library with url",
			deps: []*resolver.Dependency{withURL},
			want: `# mclib-extractor manifest: version 1.0
LIBRARIES
  org.lib:core
    version: 2.0.0
    path: org/lib/core-2.0.0.jar
    native: false
    url: https://libraries.example.net/org/lib/core-2.0.0.jar
`,
		},
		{
			name: "sorted output",
			deps: []*resolver.Dependency{native, dependency("com.google:gson:2.10", "com/google/gson-2.10.jar")},
			want: `# mclib-extractor manifest: version 1.0
LIBRARIES
  com.google:gson
    version: 2.10
    path: com/google/gson-2.10.jar
    native: false
  org.lwjgl:lwjgl:natives-linux
    version: 3.3.1
    path: org/lwjgl/lwjgl-3.3.1-natives-linux.jar
    native: true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewEmitter(&buf).Emit(tt.deps); err != nil {
				t.Fatalf("Emit() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Emit() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestEmitter_DoesNotReorderInput(t *testing.T) {
	deps := []*resolver.Dependency{dependency("z:z:1", "z.jar"), dependency("a:a:1", "a.jar")}

	var buf bytes.Buffer
	if err := NewEmitter(&buf).Emit(deps); err != nil {
		t.Fatal(err)
	}

	if deps[0].Identity.ID != "z" {
		t.Error("Emit() must not sort the caller's slice")
	}
}
