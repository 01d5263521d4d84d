package gadk

import (
	"fmt"
	"slices"
	"strings"
)

// Constructor builds one workflow. Constructors are registered by user
// code and called by the command layer; each call must return a freshly
// built workflow.
type Constructor func() (*Workflow, error)

// Registry collects workflow constructors. The zero value is ready to use.
// Registration is expected to happen up front (package init or early in
// main); Registry does no locking.
type Registry struct {
	constructors []Constructor
}

// Register adds a constructor.
func (r *Registry) Register(fn Constructor) {
	r.constructors = append(r.constructors, fn)
}

// Workflows builds every registered workflow and returns them sorted by
// filename. Two workflows sharing a filename is an error: they would
// overwrite each other's output.
func (r *Registry) Workflows() ([]*Workflow, error) {
	wfs := make([]*Workflow, 0, len(r.constructors))
	seen := make(map[string]bool, len(r.constructors))
	for _, fn := range r.constructors {
		wf, err := fn()
		if err != nil {
			return nil, fmt.Errorf("building workflow: %w", err)
		}
		if seen[wf.Filename()] {
			return nil, fmt.Errorf("duplicate workflow filename %q", wf.Filename())
		}
		seen[wf.Filename()] = true
		wfs = append(wfs, wf)
	}
	slices.SortFunc(wfs, func(a, b *Workflow) int {
		return strings.Compare(a.Filename(), b.Filename())
	})
	return wfs, nil
}

var defaultRegistry Registry

// Register adds a constructor to the default registry.
func Register(fn Constructor) {
	defaultRegistry.Register(fn)
}

// DefaultRegistry returns the registry the package-level Register adds to.
func DefaultRegistry() *Registry {
	return &defaultRegistry
}
