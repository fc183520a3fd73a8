package resolver

import (
	"log/slog"
	"strings"

	"go.trai.ch/zerr"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/profile"
)

// ErrCyclicInheritance is returned when a version descriptor is reached twice
// while following inheritsFrom.
var ErrCyclicInheritance = zerr.New("cyclic version inheritance")

// Walker follows the inheritsFrom chain of version descriptors.
type Walker struct {
	store  profile.Store
	logger *slog.Logger
	loads  int
}

// NewWalker creates a walker reading descriptors from store.
func NewWalker(store profile.Store, logger *slog.Logger) *Walker {
	return &Walker{store: store, logger: orDiscard(logger)}
}

// Walk loads startID and each ancestor in turn and returns their libraries,
// leaf first, each descriptor's libraries in declaration order.
// The first load failure aborts the walk.
func (w *Walker) Walk(startID string) ([]profile.Library, error) {
	var libs []profile.Library
	err := w.WalkFunc(startID, func(lib profile.Library) {
		libs = append(libs, lib)
	})
	if err != nil {
		return nil, err
	}
	return libs, nil
}

// WalkFunc is Walk with a callback per library instead of a slice.
func (w *Walker) WalkFunc(startID string, yield func(profile.Library)) error {
	w.loads = 0
	visited := make(map[string]bool)

	id := startID
	for {
		if visited[id] {
			return zerr.With(ErrCyclicInheritance, "version", id)
		}
		visited[id] = true

		desc, err := w.store.LoadVersionDescriptor(id)
		w.loads++
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load version descriptor"), "version", id)
		}
		w.logger.Debug("loaded version descriptor", "version", id, "libraries", len(desc.Libraries))

		for _, lib := range desc.Libraries {
			yield(lib)
		}

		if strings.TrimSpace(desc.InheritsFrom) == "" {
			return nil
		}
		id = desc.InheritsFrom
	}
}

// Loads returns the number of descriptor loads made by the last walk.
func (w *Walker) Loads() int {
	return w.loads
}
