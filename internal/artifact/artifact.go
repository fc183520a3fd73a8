// Package artifact models Maven-style artifact coordinates and versions.
package artifact

import "strings"

// Identity names a library regardless of its version.
// Two identities are equal when group, id and classifier all match;
// an empty Classifier means the coordinate had none.
type Identity struct {
	Group      string
	ID         string
	Classifier string
}

// String renders the identity as group:id[:classifier].
func (i Identity) String() string {
	if i.Classifier == "" {
		return i.Group + ":" + i.ID
	}
	return i.Group + ":" + i.ID + ":" + i.Classifier
}

// ParseCoordinate splits a group:id:version[:classifier] coordinate.
// It reports false for anything else: fewer than three or more than four
// segments, or an empty segment. Whitespace is kept as-is.
func ParseCoordinate(coordinate string) (Identity, Version, bool) {
	parts := strings.Split(coordinate, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Identity{}, Version{}, false
	}
	for _, p := range parts {
		if p == "" {
			return Identity{}, Version{}, false
		}
	}

	id := Identity{Group: parts[0], ID: parts[1]}
	if len(parts) == 4 {
		id.Classifier = parts[3]
	}
	return id, ParseVersion(parts[2]), true
}
