package manifest

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"go.trai.ch/zerr"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/artifact"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/resolver"
)

// ErrInvalid is returned for manifests that Emitter could not have written.
var ErrInvalid = zerr.New("invalid manifest")

var (
	identityRe = regexp.MustCompile(`^  (\S+)$`)
	fieldRe    = regexp.MustCompile(`^    (version|path|native|url): (.*)$`)
)

// Parser reads manifests written by Emitter.
type Parser struct {
	r io.Reader
}

// NewParser creates a new manifest parser.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// Parse reads the dependencies of a manifest.
func (p *Parser) Parse() ([]*resolver.Dependency, error) {
	var deps []*resolver.Dependency
	var current *resolver.Dependency

	scanner := bufio.NewScanner(p.r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if line == "" || strings.HasPrefix(line, "#") || line == "LIBRARIES" {
			continue
		}

		if matches := identityRe.FindStringSubmatch(line); matches != nil {
			id, ok := parseIdentity(matches[1])
			if !ok {
				return nil, zerr.With(zerr.With(zerr.Wrap(ErrInvalid, "invalid artifact"), "line", lineNo), "artifact", matches[1])
			}
			current = &resolver.Dependency{Identity: id}
			deps = append(deps, current)
			continue
		}

		matches := fieldRe.FindStringSubmatch(line)
		if matches == nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrInvalid, "unexpected content"), "line", lineNo), "content", line)
		}
		if current == nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalid, "field outside of a library"), "line", lineNo)
		}

		value := matches[2]
		switch matches[1] {
		case "version":
			current.Version = artifact.ParseVersion(value)
		case "path":
			current.Path = value
		case "native":
			current.Native = value == "true"
		case "url":
			current.URL = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	for _, d := range deps {
		if d.Path == "" {
			return nil, zerr.With(zerr.Wrap(ErrInvalid, "library has no path"), "artifact", d.Identity.String())
		}
	}

	return deps, nil
}

func parseIdentity(s string) (artifact.Identity, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return artifact.Identity{}, false
	}
	for _, part := range parts {
		if part == "" {
			return artifact.Identity{}, false
		}
	}
	id := artifact.Identity{Group: parts[0], ID: parts[1]}
	if len(parts) == 3 {
		id.Classifier = parts[2]
	}
	return id, true
}
