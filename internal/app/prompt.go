package app

import (
	"bufio"
	"fmt"
	"io"

	"go.trai.ch/zerr"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/profile"
)

// ErrNoSelection is returned when input ends before a profile was chosen.
var ErrNoSelection = zerr.New("no profile selected")

// PrintCandidates writes the numbered profile list to out.
func PrintCandidates(out io.Writer, candidates []profile.Candidate) {
	fmt.Fprintf(out, "Loaded %d launcher profiles:\n", len(candidates))
	for i, c := range candidates {
		fmt.Fprintf(out, "\t[%d]: %s (%s)\n", i, displayName(c), c.Profile.Type)
	}
}

// PromptProfile asks on out until a valid index is read from in.
func PromptProfile(in io.Reader, out io.Writer, candidates []profile.Candidate) (profile.Candidate, error) {
	if len(candidates) == 0 {
		return profile.Candidate{}, profile.ErrNoProfiles
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Please select profile for library extraction: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return profile.Candidate{}, zerr.Wrap(err, "failed to read selection")
			}
			return profile.Candidate{}, ErrNoSelection
		}

		idx, err := profile.SelectProfile(candidates, scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Invalid selection: %v\n", err)
			continue
		}
		return candidates[idx], nil
	}
}

func displayName(c profile.Candidate) string {
	if c.Profile.Name != "" {
		return c.Profile.Name
	}
	return c.Key
}
