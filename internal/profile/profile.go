// Package profile decodes launcher settings and version descriptors.
package profile

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

var (
	// ErrEnvironmentNotFound is returned when the launcher base directory does not exist.
	ErrEnvironmentNotFound = zerr.New("launcher directory not found, run launcher first")

	// ErrSettingsNotFound is returned when launcher_profiles.json is missing.
	ErrSettingsNotFound = zerr.New("profiles file not found, run launcher first")

	// ErrNoProfiles is returned when there is nothing to select from.
	ErrNoProfiles = zerr.New("no launcher profiles")

	// ErrNotANumber is returned when the selection input is not an integer.
	ErrNotANumber = zerr.New("please enter number")

	// ErrOutOfRange is returned when the selection is outside the profile list.
	ErrOutOfRange = zerr.New("out of range")
)

// Settings is the content of launcher_profiles.json.
type Settings struct {
	Version  int                `json:"version"`
	Profiles map[string]Profile `json:"profiles"`
}

// Profile is a single launcher profile.
type Profile struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	LastVersionID string `json:"lastVersionId"`
}

// VersionDescriptor is the content of versions/<id>/<id>.json.
type VersionDescriptor struct {
	ID           string    `json:"id"`
	InheritsFrom string    `json:"inheritsFrom"`
	Libraries    []Library `json:"libraries"`
}

// Library is a declared library before resolution.
// Path is empty when the descriptor has no downloads.artifact.path.
type Library struct {
	Name   string
	Path   string
	URL    string
	Native bool
}

type libraryJSON struct {
	Name      string `json:"name"`
	Downloads struct {
		Artifact *struct {
			Path string `json:"path"`
			URL  string `json:"url"`
		} `json:"artifact"`
	} `json:"downloads"`
	Rules []map[string]json.RawMessage `json:"rules"`
}

// UnmarshalJSON flattens the launcher's library object. Values that are not
// objects, or objects whose fields have unexpected types, decode to an empty
// Library, which resolution drops.
func (l *Library) UnmarshalJSON(data []byte) error {
	*l = Library{}

	var raw libraryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	l.Name = raw.Name
	if a := raw.Downloads.Artifact; a != nil {
		l.Path = a.Path
		l.URL = a.URL
	}
	for _, rule := range raw.Rules {
		if _, ok := rule["os"]; ok {
			l.Native = true
			break
		}
	}
	return nil
}
