package profile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// SettingsFile is the launcher settings document under the base directory.
const SettingsFile = "launcher_profiles.json"

// Store loads launcher documents.
type Store interface {
	// LoadSettings reads the launcher settings document.
	LoadSettings() (*Settings, error)
	// LoadVersionDescriptor reads the version descriptor for id.
	LoadVersionDescriptor(id string) (*VersionDescriptor, error)
}

// FileStore reads documents from a launcher directory laid out as
//
//	<dir>/launcher_profiles.json
//	<dir>/versions/<id>/<id>.json
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the launcher directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// CheckEnvironment returns ErrEnvironmentNotFound unless the launcher
// directory exists.
func (s *FileStore) CheckEnvironment() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrEnvironmentNotFound
		}
		return zerr.With(zerr.Wrap(err, "failed to stat launcher directory"), "path", s.dir)
	}
	if !info.IsDir() {
		return ErrEnvironmentNotFound
	}
	return nil
}

// LoadSettings reads launcher_profiles.json. A missing directory yields
// ErrEnvironmentNotFound and a missing file ErrSettingsNotFound, both
// returned unwrapped.
func (s *FileStore) LoadSettings() (*Settings, error) {
	if err := s.CheckEnvironment(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, SettingsFile)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from user configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSettingsNotFound
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings"), "path", path)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse settings"), "path", path)
	}
	return &settings, nil
}

// DescriptorPath returns versions/<id>/<id>.json under the store directory.
func (s *FileStore) DescriptorPath(id string) string {
	return filepath.Join(s.dir, "versions", id, id+".json")
}

// LoadVersionDescriptor reads the descriptor for id.
func (s *FileStore) LoadVersionDescriptor(id string) (*VersionDescriptor, error) {
	path := s.DescriptorPath(id)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from user configuration
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read version descriptor"), "path", path)
	}

	var desc VersionDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse version descriptor"), "path", path)
	}
	return &desc, nil
}
