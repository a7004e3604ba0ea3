package lipgloss_test

import (
	"io"
	"strings"
	"testing"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/svgtheme"
	"github.com/fwojciec/svgtheme/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asciiRenderer creates a lipgloss renderer with styling disabled, so
// Render output is plain text. This avoids depending on the test
// environment's terminal capabilities.
func asciiRenderer() *lipglosslib.Renderer {
	r := lipglosslib.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
func trueColorRenderer() *lipglosslib.Renderer {
	r := lipglosslib.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func testTheme() svgtheme.Theme {
	return svgtheme.Theme{
		Background: svgtheme.RGB{R: 0xe0, G: 0xb1, B: 0xcb},
		FHigh:      svgtheme.RGB{R: 0x23, G: 0x19, B: 0x42},
		FMed:       svgtheme.RGB{R: 0x5e, G: 0x54, B: 0x8e},
		FLow:       svgtheme.RGB{R: 0xbe, G: 0x95, B: 0xc4},
		FInv:       svgtheme.RGB{R: 0xe0, G: 0xb1, B: 0xcb},
		BHigh:      svgtheme.RGB{R: 0xff, G: 0xff, B: 0xff},
		BMed:       svgtheme.RGB{R: 0x5e, G: 0x54, B: 0x8e},
		BLow:       svgtheme.RGB{R: 0xbe, G: 0x95, B: 0xc4},
		BInv:       svgtheme.RGB{R: 0x9f, G: 0x86, B: 0xc0},
	}
}

// Compile-time check that Renderer implements svgtheme.Renderer.
var _ svgtheme.Renderer = (*lipgloss.Renderer)(nil)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders one line per slot in canonical order", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.NewRendererWithOutput(asciiRenderer()).Render(testTheme())

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 9)
		for i, id := range svgtheme.RequiredIdentifiers {
			assert.Contains(t, lines[i], id)
		}
	})

	t.Run("includes each slot's hex value", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.NewRendererWithOutput(asciiRenderer()).Render(testTheme())

		assert.Contains(t, out, "#e0b1cb")
		assert.Contains(t, out, "#231942")
		assert.Contains(t, out, "#9f86c0")
	})

	t.Run("paints swatches when colors are available", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.NewRendererWithOutput(trueColorRenderer()).Render(testTheme())

		// True-color background escape for the background slot.
		assert.Contains(t, out, "48;2;224;177;203")
	})
}
