// Package svgtheme provides domain types for decoding and encoding
// nine-slot SVG color palettes.
package svgtheme

import (
	"context"
	"io"
)

// Theme is a fully validated palette: nine named color slots, always
// populated. Values are only constructed by Build from validator output.
type Theme struct {
	Background RGB
	FHigh      RGB
	FMed       RGB
	FLow       RGB
	FInv       RGB
	BHigh      RGB
	BMed       RGB
	BLow       RGB
	BInv       RGB
}

// RawEntry is an (identifier, fill text) pair extracted from a document,
// before any validation.
type RawEntry struct {
	ID   string
	Fill string
}

// RequiredIdentifiers lists the nine identifiers every theme document must
// define, in canonical slot order. Error reporting sorts offenders
// lexicographically instead of using this order.
var RequiredIdentifiers = [9]string{
	"background",
	"f_high",
	"f_med",
	"f_low",
	"f_inv",
	"b_high",
	"b_med",
	"b_low",
	"b_inv",
}

// ElementKind classifies a document element by shape.
type ElementKind int

// Element kinds.
const (
	ElementRect ElementKind = iota
	ElementCircle
)

// Element is a single shape element in a parsed document.
type Element struct {
	Kind  ElementKind
	Attrs map[string]string
}

// Attr returns the named attribute and whether it is present. An attribute
// declared with an empty value is present.
func (e Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// Document is a parsed theme document: the shape elements in document order.
// It is the tree a Parser produces and the extractor consumes; it carries no
// validation guarantees of its own.
type Document struct {
	Elements []Element
}

// Parser parses raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader) (*Document, error)
}

// Renderer renders a theme as text for display.
type Renderer interface {
	Render(theme Theme) string
}

// Viewer displays a theme interactively and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, theme Theme) error
}
