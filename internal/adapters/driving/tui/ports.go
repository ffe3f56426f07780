package tui

import (
	"errors"

	"github.com/gtree-project/gtree/internal/core/ports/driving"
	"github.com/gtree-project/gtree/internal/render"
)

// Ports bundles the core services the TUI drives.
type Ports struct {
	// Query answers kinship queries over the loaded tree.
	Query driving.QueryService

	// Renderer draws charts, profiles and findings.
	Renderer *render.Renderer

	// Path is the open tree file.
	Path string

	// Reload re-reads the tree file after an external change. Optional;
	// when nil, on-disk changes are ignored.
	Reload func() (driving.QueryService, error)
}

// Validate checks that the required ports are present.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports not configured")
	}
	if p.Query == nil {
		return errors.New("query service is required")
	}
	if p.Renderer == nil {
		return errors.New("renderer is required")
	}
	return nil
}
