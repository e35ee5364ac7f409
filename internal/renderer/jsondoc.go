package renderer

import (
	"context"
	"encoding/json"
	"fmt"
)

// jsonDocument is the wire form emitted by the external rendering engine:
// one object with the header text and the positioned tokens per page.
type jsonDocument struct {
	Header   string     `json:"header_text"`
	PageList []jsonPage `json:"pages"`
}

type jsonPage struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Tokens []Token `json:"tokens"`
}

func (d *jsonDocument) Pages() []Page {
	pages := make([]Page, 0, len(d.PageList))
	for _, p := range d.PageList {
		pages = append(pages, Page{
			Number: p.Number,
			Width:  p.Width,
			Height: p.Height,
			Tokens: p.Tokens,
		})
	}
	return pages
}

func (d *jsonDocument) HeaderText() string { return d.Header }

// JSONRenderer decodes a pre-rendered token stream. The PDF engine runs out
// of process and hands its output to this module as JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(_ context.Context, data []byte) (Document, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode rendered document: %w", err)
	}
	if len(doc.PageList) == 0 {
		return nil, fmt.Errorf("rendered document has no pages")
	}
	return &doc, nil
}
