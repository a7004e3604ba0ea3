package svgtheme

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical document geometry.
const (
	canvasWidth  = 96
	canvasHeight = 64
	circleRadius = 8
)

// circleSlots maps each circle identifier to its fixed center, in canonical
// document order.
var circleSlots = [8]struct {
	id     string
	cx, cy int
}{
	{"f_high", 24, 24},
	{"f_med", 40, 24},
	{"f_low", 56, 24},
	{"f_inv", 72, 24},
	{"b_high", 24, 40},
	{"b_med", 40, 40},
	{"b_low", 56, 40},
	{"b_inv", 72, 40},
}

// Encode renders the canonical document for a theme: a 96x64 canvas holding
// one background rect followed by eight radius-8 circles at fixed centers.
// The output is byte-deterministic, so two equal themes encode identically.
func Encode(t Theme) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<svg width=\"%dpx\" height=\"%dpx\" xmlns=\"http://www.w3.org/2000/svg\" baseProfile=\"full\" version=\"1.1\">\n",
		canvasWidth, canvasHeight)
	fmt.Fprintf(&sb, "  <rect width=\"%d\" height=\"%d\" id=\"background\" fill=\"%s\"></rect>\n",
		canvasWidth, canvasHeight, t.Background.Hex())
	for _, s := range circleSlots {
		fmt.Fprintf(&sb, "  <circle cx=\"%d\" cy=\"%d\" r=\"%d\" id=\"%s\" fill=\"%s\"></circle>\n",
			s.cx, s.cy, circleRadius, s.id, t.Slot(s.id).Hex())
	}
	sb.WriteString("</svg>\n")

	return sb.String()
}

// EncodeDocument returns the same canonical content as Encode, but as a
// structured tree for collaborators that render shapes directly rather than
// writing bytes.
func EncodeDocument(t Theme) *Document {
	doc := &Document{Elements: make([]Element, 0, 1+len(circleSlots))}

	doc.Elements = append(doc.Elements, Element{
		Kind: ElementRect,
		Attrs: map[string]string{
			"width":  strconv.Itoa(canvasWidth),
			"height": strconv.Itoa(canvasHeight),
			"id":     "background",
			"fill":   t.Background.Hex(),
		},
	})
	for _, s := range circleSlots {
		doc.Elements = append(doc.Elements, Element{
			Kind: ElementCircle,
			Attrs: map[string]string{
				"cx":   strconv.Itoa(s.cx),
				"cy":   strconv.Itoa(s.cy),
				"r":    strconv.Itoa(circleRadius),
				"id":   s.id,
				"fill": t.Slot(s.id).Hex(),
			},
		})
	}

	return doc
}
