package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSpecies(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ROUGET BARBET 200/300", "ROUGET BARBET"},
		{"ROUGET GRONDIN", "ROUGET"},
		{"ST PIERRE PB", "SAINT PIERRE"},
		{"FILET LIEU JAUNE", "LIEU JAUNE"},
		{"filet de saumon", "SAUMON"},
		{"CREVETTE BOUQUET", "CREVETTES"},
		{"TOURTEAU 800/1.2", "TOURTEAU"},
		{"TOURTEAUX CUITS", "TOURTEAU"},
		{"ARAIGNEES VIVANTES", "ARAIGNEE"},
		{"CRABE VERT", "CRABE"},
		{"GAMBAS", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractSpecies(tt.in), tt.in)
	}
}

func TestFindSpecies_Position(t *testing.T) {
	species, pos, found := FindSpecies("FILET DE BAR")
	assert.True(t, found)
	assert.Equal(t, "BAR", species)
	assert.Equal(t, 9, pos)

	_, _, found = FindSpecies("HUITRES CREUSES")
	assert.False(t, found)
}

func TestRefineGenericCategory(t *testing.T) {
	generic := map[string]struct{}{"DIVERS": {}, "FILET DE POISSONS": {}}

	// Specific section passes through.
	assert.Equal(t, "TURBOT", RefineGenericCategory("TURBOT", "TURBOT 2/3", generic))

	// Generic section is replaced by the species in the name.
	assert.Equal(t, "SAUMON", RefineGenericCategory("FILET DE POISSONS", "FILET SAUMON VDK", generic))

	// Generic section with no recognizable species stays as is.
	assert.Equal(t, "DIVERS", RefineGenericCategory("DIVERS", "GAMBAS 16/20", generic))

	// Empty section takes the species when one is found.
	assert.Equal(t, "MERLU", RefineGenericCategory("", "MERLU ENTIER", generic))

	// Crabs in a shellfish catch-all get their species.
	shellfish := map[string]struct{}{"CRUSTACES": {}, "COQUILLAGES": {}}
	assert.Equal(t, "TOURTEAU", RefineGenericCategory("CRUSTACES", "TOURTEAUX 800/1.2", shellfish))
	assert.Equal(t, "ARAIGNEE", RefineGenericCategory("COQUILLAGES", "ARAIGNEE FEMELLE", shellfish))

	// Derived products keep their generic section.
	assert.Equal(t, "DIVERS", RefineGenericCategory("DIVERS", "SOUPE DE CONGRE", generic))
	assert.Equal(t, "DIVERS", RefineGenericCategory("DIVERS", "RILLETTES DE SAUMON", generic))
}
