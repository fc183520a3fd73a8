package resolver

import (
	"log/slog"
	"strings"

	"go.trai.ch/zerr"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/profile"
)

// ErrNoVersionID is returned for a profile without lastVersionId.
var ErrNoVersionID = zerr.New("profile has no version id")

// Service resolves the libraries of launcher profiles.
type Service struct {
	store  profile.Store
	logger *slog.Logger
}

// NewService creates a service backed by store.
func NewService(store profile.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: orDiscard(logger)}
}

// LoadLibraries walks the profile's version chain and resolves its libraries.
func (s *Service) LoadLibraries(p profile.Profile) ([]*Dependency, error) {
	if strings.TrimSpace(p.LastVersionID) == "" {
		return nil, zerr.With(ErrNoVersionID, "profile", p.Name)
	}

	res := NewResolver(s.logger)
	walker := NewWalker(s.store, s.logger)
	if err := walker.WalkFunc(p.LastVersionID, func(lib profile.Library) {
		res.Add(lib)
	}); err != nil {
		return nil, err
	}

	deps := res.Dependencies()
	s.logger.Debug("resolved libraries", "profile", p.Name, "descriptors", walker.Loads(), "libraries", len(deps))
	return deps, nil
}
