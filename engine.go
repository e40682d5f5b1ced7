package relief

// Engine renders profile charts onto one fixed-size surface. It keeps no state between calls other than the surface and its size, so every call recomputes its positions from its arguments.
type Engine struct {
	s             Surface
	d             *Drawer
	width, height float64
}

// New returns an engine drawing onto s.
func New(s Surface) *Engine {
	w, h := s.Size()
	return &Engine{
		s:      s,
		d:      NewDrawer(s),
		width:  w,
		height: h,
	}
}

// Size returns the width and height of the surface.
func (e *Engine) Size() (float64, float64) {
	return e.width, e.height
}

// Drawer returns the primitive drawer of the engine.
func (e *Engine) Drawer() *Drawer {
	return e.d
}

// Transform returns the coordinate transform of cfg on the engine's surface. All renderers go through it so that layers align.
func (e *Engine) Transform(cfg AxisConfig) (Transform, error) {
	return NewTransform(e.width, e.height, cfg.Padding, cfg.X, cfg.Y)
}
