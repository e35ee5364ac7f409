// Package layout turns positioned token streams into classified rows.
// It is the shared first stage of every PDF vendor format: split tokens
// into columns, cluster them into visual rows, then let the per-vendor
// geometry decide each token's role.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/lacriee/prices-tracker/internal/renderer"
)

// Row is a cluster of tokens on the same visual line, sorted left to right.
type Row struct {
	Y      float64
	Tokens []renderer.Token
}

// Line is a row merged into a single text fragment.
type Line struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Bold     bool
}

// ClusterRows groups tokens into visual rows. Tokens are sorted by (y, x);
// a token joins the current row when its y is within tol of the row's
// running mean, otherwise it starts a new row.
func ClusterRows(tokens []renderer.Token, tol float64) []Row {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]renderer.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows []Row
	current := Row{Y: sorted[0].Y, Tokens: []renderer.Token{sorted[0]}}
	for _, t := range sorted[1:] {
		if math.Abs(t.Y-current.Y) <= tol {
			current.Tokens = append(current.Tokens, t)
			current.Y = (current.Y + t.Y) / 2
		} else {
			rows = append(rows, sortRow(current))
			current = Row{Y: t.Y, Tokens: []renderer.Token{t}}
		}
	}
	rows = append(rows, sortRow(current))
	return rows
}

func sortRow(r Row) Row {
	sort.SliceStable(r.Tokens, func(i, j int) bool {
		return r.Tokens[i].X < r.Tokens[j].X
	})
	return r
}

// Merge collapses a row into a single line: texts joined left to right,
// x is the leftmost token, y the mean, font size the largest span.
func (r Row) Merge() Line {
	parts := make([]string, 0, len(r.Tokens))
	line := Line{X: math.Inf(1)}
	var ySum float64
	for _, t := range r.Tokens {
		parts = append(parts, t.Text)
		if t.X < line.X {
			line.X = t.X
		}
		if t.FontSize > line.FontSize {
			line.FontSize = t.FontSize
		}
		if t.Bold {
			line.Bold = true
		}
		ySum += t.Y
	}
	line.Y = ySum / float64(len(r.Tokens))
	line.Text = strings.Join(parts, " ")
	return line
}

// SplitAtRatio partitions page tokens into left/right columns at
// ratio*pageWidth. Partitioning happens before any row clustering so
// products at equal y in different columns never merge.
func SplitAtRatio(tokens []renderer.Token, pageWidth, ratio float64) (left, right []renderer.Token) {
	mid := pageWidth * ratio
	for _, t := range tokens {
		if t.X < mid {
			left = append(left, t)
		} else {
			right = append(right, t)
		}
	}
	return left, right
}

// SplitBands partitions tokens into one slice per x band. Tokens outside
// every band are dropped.
func SplitBands(tokens []renderer.Token, bands []Band) [][]renderer.Token {
	out := make([][]renderer.Token, len(bands))
	for _, t := range tokens {
		for i, b := range bands {
			if t.X >= b.Min && t.X <= b.Max {
				out[i] = append(out[i], t)
				break
			}
		}
	}
	return out
}
