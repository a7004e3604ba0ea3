// Package lipgloss renders theme previews using the Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/svgtheme"
)

// Compile-time interface verification.
var _ svgtheme.Renderer = (*Renderer)(nil)

// Renderer renders a theme as a swatch sheet, one line per slot.
type Renderer struct {
	r *lipglosslib.Renderer
}

// NewRenderer creates a Renderer using the default Lipgloss output.
func NewRenderer() *Renderer {
	return &Renderer{r: lipglosslib.DefaultRenderer()}
}

// NewRendererWithOutput creates a Renderer backed by the given Lipgloss
// renderer. Tests use this to pin the color profile.
func NewRendererWithOutput(r *lipglosslib.Renderer) *Renderer {
	return &Renderer{r: r}
}

// Render returns one line per slot: a swatch painted with the slot's color,
// the identifier, and its hex value. Slots appear in canonical order with
// the background first.
func (r *Renderer) Render(theme svgtheme.Theme) string {
	var sb strings.Builder
	for _, id := range svgtheme.RequiredIdentifiers {
		hex := theme.Slot(id).Hex()
		swatch := r.r.NewStyle().
			Background(lipglosslib.Color(hex)).
			Render("    ")
		fmt.Fprintf(&sb, "%s %-10s %s\n", swatch, id, hex)
	}
	return sb.String()
}
