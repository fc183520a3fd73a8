package resolver

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/artifact"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/profile"
)

func lib(name, path string) profile.Library {
	return profile.Library{Name: name, Path: path}
}

func TestResolver_ScenarioA(t *testing.T) {
	// child declares 1.0.0, parent declares 2.0.0; walk order is child first.
	r := NewResolver(nil)

	deps := r.Resolve([]profile.Library{
		lib("org.lib:core:1.0.0", "org/lib/core-1.0.0.jar"),
		lib("org.lib:core:2.0.0", "org/lib/core-2.0.0.jar"),
	})

	require.Len(t, deps, 1)
	assert.Equal(t, artifact.Identity{Group: "org.lib", ID: "core"}, deps[0].Identity)
	assert.Equal(t, "2.0.0", deps[0].Version.String())
	assert.Equal(t, "org/lib/core-2.0.0.jar", deps[0].Path)
}

func TestResolver_VersionMax_NotLexicographic(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
	}{
		{"numeric segments", []string{"9.0", "10.0"}, "10.0"},
		{"numeric segments reversed", []string{"10.0", "9.0"}, "10.0"},
		{"three candidates", []string{"1.2", "1.10", "1.9"}, "1.10"},
		{"release beats snapshot", []string{"2.0-SNAPSHOT", "2.0", "1.9"}, "2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(nil)
			for _, v := range tt.versions {
				r.Add(lib("g:a:"+v, "g/a-"+v+".jar"))
			}

			deps := r.Dependencies()

			require.Len(t, deps, 1)
			assert.Equal(t, tt.want, deps[0].Version.String())
			assert.Equal(t, "g/a-"+tt.want+".jar", deps[0].Path)
		})
	}
}

func TestResolver_EqualVersionsKeepFirst(t *testing.T) {
	r := NewResolver(nil)
	r.Add(profile.Library{Name: "g:a:1.0", Path: "first.jar", URL: "https://example.com/first.jar"})
	r.Add(profile.Library{Name: "g:a:1.0.0", Path: "second.jar", URL: "https://example.com/second.jar", Native: true})

	deps := r.Dependencies()

	require.Len(t, deps, 1)
	assert.Equal(t, "first.jar", deps[0].Path)
	assert.Equal(t, "https://example.com/first.jar", deps[0].URL)
	assert.False(t, deps[0].Native)
}

func TestResolver_SupersedeReplacesAllFields(t *testing.T) {
	r := NewResolver(nil)
	r.Add(profile.Library{Name: "g:a:1.0", Path: "old.jar", URL: "https://example.com/old.jar"})
	r.Add(profile.Library{Name: "g:a:2.0", Path: "new.jar", Native: true})

	deps := r.Dependencies()

	require.Len(t, deps, 1)
	assert.Equal(t, "new.jar", deps[0].Path)
	assert.Empty(t, deps[0].URL)
	assert.True(t, deps[0].Native)
}

func TestResolver_DropsMalformed(t *testing.T) {
	r := NewResolver(nil)

	assert.True(t, r.Add(lib("g:a:1.0", "a.jar")))
	assert.False(t, r.Add(lib("g:a", "broken.jar")), "two segments")
	assert.False(t, r.Add(lib("g:a:9.0:x:y", "broken.jar")), "five segments")
	assert.False(t, r.Add(lib("g:a:9.0", "")), "no artifact path")
	assert.False(t, r.Add(lib("", "empty.jar")), "empty coordinate")

	deps := r.Dependencies()
	require.Len(t, deps, 1)
	assert.Equal(t, "1.0", deps[0].Version.String())
}

func TestResolver_ClassifierIsPartOfIdentity(t *testing.T) {
	r := NewResolver(nil)

	deps := r.Resolve([]profile.Library{
		lib("org.lwjgl:lwjgl:3.3.1", "lwjgl.jar"),
		lib("org.lwjgl:lwjgl:3.3.1:natives-linux", "lwjgl-natives-linux.jar"),
		lib("org.lwjgl:lwjgl:3.2.2:natives-linux", "lwjgl-natives-linux-old.jar"),
	})

	require.Len(t, deps, 2)
	assert.Equal(t, "org.lwjgl:lwjgl", deps[0].Identity.String())
	assert.Equal(t, "org.lwjgl:lwjgl:natives-linux", deps[1].Identity.String())
	assert.Equal(t, "lwjgl-natives-linux.jar", deps[1].Path)
}

func TestResolver_IdentityUniqueness(t *testing.T) {
	r := NewResolver(nil)
	names := []string{"a:b:1", "a:b:2", "a:c:1", "a:b:1:x", "a:c:0.9", "a:b:3", "z:z:1"}
	for _, n := range names {
		r.Add(lib(n, strings.ReplaceAll(n, ":", "/")))
	}

	seen := make(map[artifact.Identity]bool)
	for _, d := range r.Dependencies() {
		assert.False(t, seen[d.Identity], "duplicate identity %s", d.Identity)
		seen[d.Identity] = true
	}
	assert.Len(t, seen, 4)
}

func TestResolver_MalformedURL(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(slog.New(slog.NewTextHandler(&buf, nil)))

	r.Add(profile.Library{Name: "g:a:1", Path: "a.jar", URL: "not a url"})
	r.Add(profile.Library{Name: "g:b:1", Path: "b.jar", URL: "ftp://example.com/b.jar"})
	r.Add(profile.Library{Name: "g:c:1", Path: "c.jar", URL: "https://example.com/c.jar"})

	deps := r.Dependencies()
	require.Len(t, deps, 3)
	assert.Empty(t, deps[0].URL)
	assert.Empty(t, deps[1].URL)
	assert.Equal(t, "https://example.com/c.jar", deps[2].URL)
	assert.Equal(t, 2, strings.Count(buf.String(), "malformed artifact url"))
}

func TestResolver_ConflictDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(slog.New(slog.NewTextHandler(&buf, nil)))

	r.Add(lib("org.lib:core:1.0.0", "core-1.jar"))
	r.Add(lib("org.lib:core:2.0.0", "core-2.jar"))

	out := buf.String()
	assert.Contains(t, out, "duplicate artifact")
	assert.Contains(t, out, "artifact=org.lib:core")
	assert.Contains(t, out, "current=2.0.0")
	assert.Contains(t, out, "previous=1.0.0")
	assert.Contains(t, out, "selected=2.0.0")
}
