// Package app implements the extract and list flows of mclib-extractor.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.trai.ch/zerr"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/config"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/downloader"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/logging"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/manifest"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/materializer"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/profile"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/resolver"
)

// App runs the command flows against one launcher directory.
type App struct {
	cfg     config.Config
	store   *profile.FileStore
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
	fetcher materializer.Fetcher
}

// Option configures an App.
type Option func(*App)

// WithInput sets the reader used for the interactive profile prompt.
func WithInput(r io.Reader) Option {
	return func(a *App) {
		a.in = r
	}
}

// WithOutput sets the writer for user facing messages.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithFetcher replaces the HTTP downloader.
func WithFetcher(f materializer.Fetcher) Option {
	return func(a *App) {
		a.fetcher = f
	}
}

// New creates an App for cfg.
func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		store:  profile.NewFileStore(cfg.MinecraftDir),
		in:     os.Stdin,
		out:    os.Stdout,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.fetcher == nil {
		a.fetcher = downloader.NewDownloader(nil)
	}
	return a
}

// ExtractOptions selects what Extract materializes.
type ExtractOptions struct {
	// Profile is a profile key or index; empty prompts interactively.
	Profile string
	// Manifest, when set, is read instead of resolving a profile.
	Manifest string
}

// Extract resolves a profile and copies its libraries into the destination.
// Errors are returned as *ExitError.
func (a *App) Extract(ctx context.Context, opts ExtractOptions) error {
	deps, err := a.dependencies(opts)
	if err != nil {
		return classify(err)
	}

	m := materializer.New(materializer.Options{
		CacheRoot: a.cfg.MinecraftDir,
		DestRoot:  a.cfg.Destination,
		Download:  a.cfg.Download,
		Workers:   a.cfg.Workers,
	}, a.fetcher, a.logger)

	report, err := m.Materialize(ctx, deps)
	if err != nil {
		return classify(zerr.Wrap(err, "unable to copy libraries"))
	}

	fmt.Fprintf(a.out, "Successfully copied %d libraries\n", report.Total())
	if len(report.Skipped) > 0 {
		fmt.Fprintf(a.out, "Skipped %d libraries\n", len(report.Skipped))
	}
	return nil
}

// List resolves a profile and writes its manifest to w.
func (a *App) List(profileRef string, w io.Writer) error {
	deps, err := a.resolveProfile(profileRef)
	if err != nil {
		return classify(err)
	}
	if err := manifest.NewEmitter(w).Emit(deps); err != nil {
		return classify(zerr.Wrap(err, "failed to write manifest"))
	}
	return nil
}

func (a *App) dependencies(opts ExtractOptions) ([]*resolver.Dependency, error) {
	if opts.Manifest == "" {
		return a.resolveProfile(opts.Profile)
	}

	// The manifest replaces resolution but libraries still come from the cache.
	if err := a.store.CheckEnvironment(); err != nil {
		return nil, err
	}

	f, err := os.Open(opts.Manifest)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open manifest"), "path", opts.Manifest)
	}
	defer f.Close()

	deps, err := manifest.NewParser(f).Parse()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", opts.Manifest)
	}
	return deps, nil
}

func (a *App) resolveProfile(ref string) ([]*resolver.Dependency, error) {
	fmt.Fprintln(a.out, "Loading profiles")
	settings, err := a.store.LoadSettings()
	if err != nil {
		return nil, err
	}

	candidates := profile.Candidates(settings)
	selected, err := a.selectProfile(candidates, ref)
	if err != nil {
		return nil, err
	}

	a.logger.Info("resolving profile", "profile", selected.Key, "version", selected.Profile.LastVersionID)
	return resolver.NewService(a.store, a.logger).LoadLibraries(selected.Profile)
}

func (a *App) selectProfile(candidates []profile.Candidate, ref string) (profile.Candidate, error) {
	if ref != "" {
		idx, err := profile.FindProfile(candidates, ref)
		if err != nil {
			return profile.Candidate{}, zerr.With(zerr.Wrap(err, "unknown profile"), "profile", ref)
		}
		return candidates[idx], nil
	}

	PrintCandidates(a.out, candidates)
	return PromptProfile(a.in, a.out, candidates)
}
