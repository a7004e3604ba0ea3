// Package mock provides test doubles for svgtheme interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/svgtheme"
)

// Compile-time interface verification.
var _ svgtheme.Parser = (*Parser)(nil)

// Parser is a mock implementation of svgtheme.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*svgtheme.Document, error)
}

func (p *Parser) Parse(r io.Reader) (*svgtheme.Document, error) {
	return p.ParseFn(r)
}
