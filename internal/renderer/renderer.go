// Package renderer defines the contract for positioned-text extraction from
// vendor documents. Implementations wrap an external PDF rendering engine;
// this module only consumes the interface.
package renderer

import "context"

// Token is a positioned text fragment on a page.
type Token struct {
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
	Bold     bool    `json:"bold"`
}

// Page holds the tokens and dimensions of a single rendered page.
type Page struct {
	Number int
	Width  float64
	Height float64
	Tokens []Token
}

// Document is a rendered vendor document.
type Document interface {
	// Pages returns the rendered pages in order.
	Pages() []Page
	// HeaderText returns document-level header metadata, if any.
	// Used as a secondary date source.
	HeaderText() string
}

// Renderer turns raw document bytes into a positioned-token Document.
type Renderer interface {
	Render(ctx context.Context, data []byte) (Document, error)
}
