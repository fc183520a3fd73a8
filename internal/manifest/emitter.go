// Package manifest writes the resolved library set as text.
package manifest

import (
	"fmt"
	"io"
	"sort"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/resolver"
)

const header = "# mclib-extractor manifest: version 1.0\n"

// Emitter writes manifests.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates a new manifest emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes deps sorted by artifact identity.
func (e *Emitter) Emit(deps []*resolver.Dependency) error {
	sorted := make([]*resolver.Dependency, len(deps))
	copy(sorted, deps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Identity.String() < sorted[j].Identity.String()
	})

	if _, err := fmt.Fprint(e.w, header); err != nil {
		return err
	}

	if _, err := fmt.Fprint(e.w, "LIBRARIES\n"); err != nil {
		return err
	}

	for _, d := range sorted {
		if err := e.emitDependency(d); err != nil {
			return err
		}
	}

	return nil
}

func (e *Emitter) emitDependency(d *resolver.Dependency) error {
	if _, err := fmt.Fprintf(e.w, "  %s\n", d.Identity); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(e.w, "    version: %s\n", d.Version); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(e.w, "    path: %s\n", d.Path); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(e.w, "    native: %t\n", d.Native); err != nil {
		return err
	}

	if d.URL != "" {
		if _, err := fmt.Fprintf(e.w, "    url: %s\n", d.URL); err != nil {
			return err
		}
	}

	return nil
}
