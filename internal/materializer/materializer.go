// Package materializer copies resolved libraries into the output tree.
package materializer

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/artifact"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/logging"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/resolver"
)

// Output subdirectories under the destination root.
const (
	LibrariesDir = "libraries"
	NativesDir   = "natives"
)

var (
	// ErrDestinationIsCache is returned when the output root is the launcher
	// directory, which would overwrite cached artifacts with themselves.
	ErrDestinationIsCache = zerr.New("destination must not be the launcher directory")

	// ErrSameFile is returned when a cached artifact and its destination are
	// the same file.
	ErrSameFile = zerr.New("cached library and destination are the same file")
)

// Fetcher downloads a URL into a file.
type Fetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
}

// Options configures a Materializer.
type Options struct {
	// CacheRoot is the launcher directory; artifacts are read from CacheRoot/libraries.
	CacheRoot string
	// DestRoot receives libraries/ and natives/.
	DestRoot string
	// Download enables fetching artifacts missing from the cache.
	Download bool
	// Workers bounds concurrent items. Values below 1 mean 1.
	Workers int
}

// Report summarizes a run.
type Report struct {
	Copied     int
	Downloaded int
	Skipped    []artifact.Identity
}

// Total returns the number of libraries written.
func (r *Report) Total() int {
	return r.Copied + r.Downloaded
}

// Materializer writes resolved dependencies to disk.
type Materializer struct {
	opts    Options
	fetcher Fetcher
	logger  *slog.Logger

	mu     sync.Mutex
	report *Report
}

// New creates a materializer. fetcher may be nil when downloads are disabled.
func New(opts Options, fetcher Fetcher, logger *slog.Logger) *Materializer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Materializer{opts: opts, fetcher: fetcher, logger: logger}
}

// DestPath returns where dep is written.
func (m *Materializer) DestPath(dep *resolver.Dependency) string {
	sub := LibrariesDir
	if dep.Native {
		sub = NativesDir
	}
	return filepath.Join(m.opts.DestRoot, sub, filepath.FromSlash(dep.Path))
}

// CachePath returns where dep is looked up in the launcher cache.
func (m *Materializer) CachePath(dep *resolver.Dependency) string {
	return filepath.Join(m.opts.CacheRoot, LibrariesDir, filepath.FromSlash(dep.Path))
}

// Materialize copies or downloads every dependency. Missing artifacts that
// cannot be downloaded are skipped with a warning; any I/O or transport
// failure aborts the run.
func (m *Materializer) Materialize(ctx context.Context, deps []*resolver.Dependency) (*Report, error) {
	m.report = &Report{}

	if err := m.checkRoots(); err != nil {
		return m.report, err
	}

	for _, dir := range []string{LibrariesDir, NativesDir} {
		path := filepath.Join(m.opts.DestRoot, dir)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return m.report, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Workers)
	for _, dep := range deps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return m.materializeOne(gctx, dep)
		})
	}
	err := g.Wait()

	sort.Slice(m.report.Skipped, func(i, j int) bool {
		return m.report.Skipped[i].String() < m.report.Skipped[j].String()
	})
	return m.report, err
}

func (m *Materializer) materializeOne(ctx context.Context, dep *resolver.Dependency) error {
	if !filepath.IsLocal(filepath.FromSlash(dep.Path)) {
		m.logger.Warn("library path escapes output directory", "artifact", dep.Identity.String(), "path", dep.Path)
		m.skip(dep)
		return nil
	}

	dest := m.DestPath(dep)
	src := m.CachePath(dep)

	srcInfo, err := os.Stat(src)
	switch {
	case err == nil:
		if destInfo, err := os.Stat(dest); err == nil && os.SameFile(srcInfo, destInfo) {
			return zerr.With(ErrSameFile, "path", src)
		}
		if err := copyFile(src, dest); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to materialize library"), "artifact", dep.Identity.String())
		}
		m.count(false)
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return zerr.With(zerr.Wrap(err, "failed to stat cached library"), "path", src)
	}

	if !m.opts.Download || m.fetcher == nil {
		m.logger.Warn("library not found in cache", "artifact", dep.Identity.String(), "path", dep.Path)
		m.skip(dep)
		return nil
	}
	if dep.URL == "" {
		m.logger.Warn("library has no download url", "artifact", dep.Identity.String(), "path", dep.Path)
		m.skip(dep)
		return nil
	}

	m.logger.Info("downloading library", "artifact", dep.Identity.String(), "url", dep.URL)
	if err := m.fetcher.Fetch(ctx, dep.URL, dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to materialize library"), "artifact", dep.Identity.String())
	}
	m.count(true)
	return nil
}

// checkRoots rejects a destination root that is the cache root. Either root
// may not exist yet, in which case they cannot collide.
func (m *Materializer) checkRoots() error {
	destInfo, err := os.Stat(m.opts.DestRoot)
	if err != nil {
		return nil
	}
	cacheInfo, err := os.Stat(m.opts.CacheRoot)
	if err != nil {
		return nil
	}
	if os.SameFile(destInfo, cacheInfo) {
		return zerr.With(ErrDestinationIsCache, "path", m.opts.DestRoot)
	}
	return nil
}

func (m *Materializer) count(downloaded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if downloaded {
		m.report.Downloaded++
	} else {
		m.report.Copied++
	}
}

func (m *Materializer) skip(dep *resolver.Dependency) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.report.Skipped = append(m.report.Skipped, dep.Identity)
}

// copyFile streams src over dst, creating dst's parent directories.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	in, err := os.Open(src) //nolint:gosec // source is derived from resolved library paths
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open cached library"), "path", src)
	}
	defer in.Close()

	out, err := os.Create(dst) //nolint:gosec // destination is derived from resolved library paths
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy library"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}
	return nil
}
