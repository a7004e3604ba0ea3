package svgtheme_test

import (
	"testing"

	"github.com/fwojciec/svgtheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	t.Run("parses six digit hex", func(t *testing.T) {
		t.Parallel()

		rgb, err := svgtheme.ParseColor("#e0b1cb")
		require.NoError(t, err)
		assert.Equal(t, svgtheme.RGB{R: 0xe0, G: 0xb1, B: 0xcb}, rgb)
	})

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		upper, err := svgtheme.ParseColor("#E0B1CB")
		require.NoError(t, err)
		lower, err := svgtheme.ParseColor("#e0b1cb")
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("parses three digit shorthand", func(t *testing.T) {
		t.Parallel()

		rgb, err := svgtheme.ParseColor("#fff")
		require.NoError(t, err)
		assert.Equal(t, svgtheme.RGB{R: 0xff, G: 0xff, B: 0xff}, rgb)

		rgb, err = svgtheme.ParseColor("#abc")
		require.NoError(t, err)
		assert.Equal(t, svgtheme.RGB{R: 0xaa, G: 0xbb, B: 0xcc}, rgb)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"y83r", "", "#", "e0b1cb", "#ffff", "#gggggg", " #fff"} {
			_, err := svgtheme.ParseColor(input)
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("rejects wrong-length and trailing input", func(t *testing.T) {
		t.Parallel()

		// Sscanf-style scanning would accept these by ignoring trailing
		// characters or reading short.
		for _, input := range []string{"#e0b1cbZZ", "#fffff", "#12345", "#ff", "#fffffff", "#fff "} {
			_, err := svgtheme.ParseColor(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestRGB_Hex(t *testing.T) {
	t.Parallel()

	t.Run("formats lowercase six digits", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "#e0b1cb", svgtheme.RGB{R: 0xe0, G: 0xb1, B: 0xcb}.Hex())
		assert.Equal(t, "#000000", svgtheme.RGB{}.Hex())
		assert.Equal(t, "#ffffff", svgtheme.RGB{R: 0xff, G: 0xff, B: 0xff}.Hex())
	})

	t.Run("round trips through ParseColor", func(t *testing.T) {
		t.Parallel()

		orig := svgtheme.RGB{R: 0x23, G: 0x19, B: 0x42}
		parsed, err := svgtheme.ParseColor(orig.Hex())
		require.NoError(t, err)
		assert.Equal(t, orig, parsed)
	})
}
