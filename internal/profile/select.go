package profile

import (
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Candidate is a selectable launcher profile.
type Candidate struct {
	Key     string
	Profile Profile
}

// Candidates lists the settings' profiles sorted by key so that indexes are
// stable between runs.
func Candidates(settings *Settings) []Candidate {
	if settings == nil {
		return nil
	}
	out := make([]Candidate, 0, len(settings.Profiles))
	for key, p := range settings.Profiles {
		out = append(out, Candidate{Key: key, Profile: p})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// SelectProfile interprets rawInput as an index into candidates.
func SelectProfile(candidates []Candidate, rawInput string) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoProfiles
	}
	input := strings.TrimSpace(rawInput)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, zerr.With(ErrNotANumber, "input", input)
	}
	if n < 0 || n >= len(candidates) {
		return 0, zerr.With(ErrOutOfRange, "input", n)
	}
	return n, nil
}

// FindProfile resolves ref as a profile key first, then as an index.
func FindProfile(candidates []Candidate, ref string) (int, error) {
	for i, c := range candidates {
		if c.Key == ref {
			return i, nil
		}
	}
	return SelectProfile(candidates, ref)
}
