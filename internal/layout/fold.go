package layout

import "sort"

// CategoryFold carries the current category while replaying a y-ordered
// row sequence. Vendors print a category header once and let it apply to
// every following row until the next header; callers reset the fold at
// each column boundary when the vendor's categories do not span columns.
type CategoryFold struct {
	current string
}

func (f *CategoryFold) Set(category string) { f.current = category }

func (f *CategoryFold) Current() string { return f.current }

func (f *CategoryFold) Reset() { f.current = "" }

// SectionIndex resolves typographic section titles by vertical position.
// Titles are collected in a separate pass; At returns the last title at
// or above the given y.
type SectionIndex struct {
	entries []sectionEntry
	sorted  bool
}

type sectionEntry struct {
	y    float64
	name string
}

func (s *SectionIndex) Add(y float64, name string) {
	s.entries = append(s.entries, sectionEntry{y: y, name: name})
	s.sorted = false
}

func (s *SectionIndex) At(y float64) string {
	if !s.sorted {
		sort.SliceStable(s.entries, func(i, j int) bool {
			return s.entries[i].y < s.entries[j].y
		})
		s.sorted = true
	}
	current := ""
	for _, e := range s.entries {
		if y >= e.y {
			current = e.name
		} else {
			break
		}
	}
	return current
}

func (s *SectionIndex) Empty() bool { return len(s.entries) == 0 }
