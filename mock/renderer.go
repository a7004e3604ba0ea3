package mock

import "github.com/fwojciec/svgtheme"

// Compile-time interface verification.
var _ svgtheme.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of svgtheme.Renderer.
type Renderer struct {
	RenderFn func(theme svgtheme.Theme) string
}

func (r *Renderer) Render(theme svgtheme.Theme) string {
	return r.RenderFn(theme)
}
