package mock

import (
	"context"

	"github.com/fwojciec/svgtheme"
)

// Compile-time interface verification.
var _ svgtheme.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of svgtheme.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, theme svgtheme.Theme) error
}

func (v *Viewer) View(ctx context.Context, theme svgtheme.Theme) error {
	return v.ViewFn(ctx, theme)
}
