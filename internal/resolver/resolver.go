// Package resolver turns a chain of version descriptors into a deduplicated
// set of library dependencies.
package resolver

import (
	"log/slog"
	"net/url"
	"sort"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/artifact"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/logging"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/profile"
)

// Dependency is a resolved library. URL is empty when it cannot be downloaded.
type Dependency struct {
	Identity artifact.Identity
	Version  artifact.Version
	Path     string
	URL      string
	Native   bool
}

// Resolver merges library entries by artifact identity, keeping the
// highest version of each.
type Resolver struct {
	resolved map[artifact.Identity]*Dependency
	logger   *slog.Logger
}

// NewResolver creates an empty resolver.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{
		resolved: make(map[artifact.Identity]*Dependency),
		logger:   orDiscard(logger),
	}
}

// Resolve adds every entry and returns the resolved set.
// Entries accumulate across calls.
func (r *Resolver) Resolve(libs []profile.Library) []*Dependency {
	for _, lib := range libs {
		r.Add(lib)
	}
	return r.Dependencies()
}

// Add merges one entry. It reports false when the entry was dropped because
// its coordinate is unparsable or it has no artifact path.
func (r *Resolver) Add(lib profile.Library) bool {
	if lib.Path == "" {
		return false
	}
	id, version, ok := artifact.ParseCoordinate(lib.Name)
	if !ok {
		return false
	}

	current := &Dependency{
		Identity: id,
		Version:  version,
		Path:     lib.Path,
		URL:      r.downloadURL(lib.URL),
		Native:   lib.Native,
	}

	previous, exists := r.resolved[id]
	if !exists {
		r.resolved[id] = current
		return true
	}

	previousVersion := previous.Version
	// Equal versions keep the entry seen first.
	if current.Version.Compare(previous.Version) > 0 {
		*previous = *current
	}
	r.logger.Info("duplicate artifact",
		"artifact", id.String(),
		"current", current.Version.String(),
		"previous", previousVersion.String(),
		"selected", previous.Version.String(),
	)
	return true
}

// Dependencies returns the resolved set ordered by identity.
func (r *Resolver) Dependencies() []*Dependency {
	deps := make([]*Dependency, 0, len(r.resolved))
	for _, d := range r.resolved {
		deps = append(deps, d)
	}
	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Identity.String() < deps[j].Identity.String()
	})
	return deps
}

func (r *Resolver) downloadURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		r.logger.Warn("malformed artifact url", "url", raw)
		return ""
	}
	return raw
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
