package hexgrid

// Renderer converts between tile and screen coordinates and draws
// grids, layers, and selections for one stagger configuration.
//
// A Renderer holds no mutable state: every operation rederives its
// geometry from the Workspace it is given, so a single Renderer may
// serve any number of differently sized grids and may be called from
// multiple goroutines, provided the Surface passed to the draw
// methods is not itself shared without synchronization.
type Renderer struct {
	cfg StaggerConfig
}

// New creates a Renderer for the given stagger configuration.
func New(cfg StaggerConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the renderer's stagger configuration.
func (r *Renderer) Config() StaggerConfig {
	return r.cfg
}
