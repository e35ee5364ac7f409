package harmonize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPrepStates(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"BAR VIDÉ", []string{"Vidé"}},
		{"bar vide ecaille", []string{"Vidé", "Écaillé"}},
		{"MERLAN NON VIDÉ", []string{"Non vidé"}},
		{"DORADE ÉCAILLÉE VIDÉE ÉTÊTÉE", []string{"Écaillé", "Vidé", "Étêté"}},
		{"SOLE ENTIÈRE", []string{"Entier"}},
		{"BAR VIDÉ VIDÉ", []string{"Vidé"}},
		{"TURBOT 2/3", nil},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPrepStates(tt.in), tt.in)
	}
}

func TestExtractPrepStates_OrderFollowsTheName(t *testing.T) {
	got := extractPrepStates("CABILLAUD ÉTÊTÉ VIDÉ")
	assert.Equal(t, []string{"Étêté", "Vidé"}, got)
}

func TestCombineCutWithPrepStates(t *testing.T) {
	assert.Equal(t, "FILET, Vidé, Gratté",
		combineCutWithPrepStates("FILET", []string{"Vidé", "Gratté"}))

	assert.Equal(t, "Vidé", combineCutWithPrepStates("", []string{"Vidé"}))
	assert.Equal(t, "DOS", combineCutWithPrepStates("DOS", nil))
	assert.Equal(t, "", combineCutWithPrepStates("", nil))

	// Case-insensitive dedup keeps the first spelling.
	assert.Equal(t, "VIDÉ", combineCutWithPrepStates("VIDÉ", []string{"Vidé"}))
}
