package harmonize

import (
	"regexp"
	"strings"

	"github.com/lacriee/prices-tracker/internal/extract"
)

var reFilet = regexp.MustCompile(`\bFILETS?\b`)

// filetMeaning decides whether FILET in a name is a cut or a catch method.
// "Filet de Bar" puts FILET before the species, so it is the cut; "Bar
// filet" puts it after, which in these price lists names the net fishery.
type filetMeaning struct {
	isCut    bool
	isMethod bool
	species  string
}

func analyzeFilet(text string) filetMeaning {
	var m filetMeaning
	if text == "" {
		return m
	}
	upper := strings.ToUpper(text)

	loc := reFilet.FindStringIndex(upper)
	if loc == nil {
		return m
	}
	filetPos := loc[0]

	species, speciesPos, found := extract.FindSpecies(upper)
	m.species = species

	if !found {
		// No recognized species, FILET defaults to a cut.
		m.isCut = true
		return m
	}
	if filetPos < speciesPos {
		m.isCut = true
	} else {
		m.isMethod = true
	}
	return m
}
