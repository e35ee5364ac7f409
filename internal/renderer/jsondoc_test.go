package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRendererRender(t *testing.T) {
	data := []byte(`{
		"header_text": "Cours du 15/01/2024",
		"pages": [
			{
				"number": 1,
				"width": 595.0,
				"height": 842.0,
				"tokens": [
					{"page": 1, "x": 56.7, "y": 120.2, "text": "TURBOT", "font_size": 12.0, "bold": true},
					{"page": 1, "x": 56.7, "y": 140.8, "text": "turbot 2/3", "font_size": 8.5, "bold": false}
				]
			},
			{"number": 2, "width": 595.0, "height": 842.0, "tokens": []}
		]
	}`)

	doc, err := JSONRenderer{}.Render(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, "Cours du 15/01/2024", doc.HeaderText())

	pages := doc.Pages()
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, 595.0, pages[0].Width)
	require.Len(t, pages[0].Tokens, 2)
	assert.Equal(t, Token{Page: 1, X: 56.7, Y: 120.2, Text: "TURBOT", FontSize: 12.0, Bold: true}, pages[0].Tokens[0])
	assert.Empty(t, pages[1].Tokens)
}

func TestJSONRendererRejectsBadInput(t *testing.T) {
	_, err := JSONRenderer{}.Render(context.Background(), []byte("%PDF-1.7 garbage"))
	assert.Error(t, err)

	// valid JSON but no pages
	_, err = JSONRenderer{}.Render(context.Background(), []byte(`{"header_text": "x", "pages": []}`))
	assert.Error(t, err)
}
