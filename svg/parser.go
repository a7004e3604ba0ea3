// Package svg implements theme document parsing using encoding/xml.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/fwojciec/svgtheme"
)

// Compile-time interface verification.
var _ svgtheme.Parser = (*Parser)(nil)

// Parser parses SVG theme documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// node is a generic XML element: its attributes plus its child elements in
// document order. Text content is not retained.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
}

// Parse reads an SVG document and returns its rect and circle elements in
// document order. Shapes nested inside groups are included. No validation
// happens here; missing attributes surface later as validation failures.
func (p *Parser) Parse(r io.Reader) (*svgtheme.Document, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	doc := &svgtheme.Document{}
	collect(root, doc)
	return doc, nil
}

func collect(n node, doc *svgtheme.Document) {
	switch n.XMLName.Local {
	case "rect":
		doc.Elements = append(doc.Elements, element(svgtheme.ElementRect, n))
	case "circle":
		doc.Elements = append(doc.Elements, element(svgtheme.ElementCircle, n))
	}
	for _, child := range n.Nodes {
		collect(child, doc)
	}
}

func element(kind svgtheme.ElementKind, n node) svgtheme.Element {
	attrs := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		attrs[a.Name.Local] = a.Value
	}
	return svgtheme.Element{Kind: kind, Attrs: attrs}
}
