package particle

// Resizer rebuilds a field whenever the canvas size changes.
type Resizer struct {
	Field *Field
	Count int

	// OnResize, if set, is called after each rebuild.
	OnResize func(width, height int)

	width, height int
}

// Resize is called with the current canvas size, typically once per
// frame. It rebuilds the field on the first call and whenever the size
// differs from the last one. It reports whether it rebuilt.
func (r *Resizer) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == r.width && height == r.height {
		return false
	}
	r.width, r.height = width, height
	r.Field.Initialize(r.Count, float64(width), float64(height))
	if r.OnResize != nil {
		r.OnResize(width, height)
	}
	return true
}

// Size is the last size the field was built for.
func (r *Resizer) Size() (int, int) { return r.width, r.height }
