package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstAttr_TableOrderWins(t *testing.T) {
	rules := []attrRule{
		rule(`\bIRLANDE\b`, "IRLANDE"),
		rule(`\bIRL\b`, "IRLANDE"),
		rule(`\bFRANCE\b`, "FRANCE"),
	}

	assert.Equal(t, "IRLANDE", firstAttr(rules, "SAUMON IRLANDE"))
	assert.Equal(t, "IRLANDE", firstAttr(rules, "SAUMON IRL"))
	assert.Equal(t, "IRLANDE", firstAttr(rules, "SAUMON IRLANDE FRANCE"))
	assert.Equal(t, "", firstAttr(rules, "SAUMON ECOSSE"))
}

func TestFirstAttr_EmptyValueKeepsMatch(t *testing.T) {
	rules := []attrRule{rule(`\bT\d+\b`, "")}
	assert.Equal(t, "T3", firstAttr(rules, "HOMARD T3 VIVANT"))
}

func TestAllAttrs_CollectsAndDedups(t *testing.T) {
	rules := []attrRule{
		rule(`\bVDK\b`, "DANEMARK"),
		rule(`\bVAT\b`, "ATLANTIQUE"),
		rule(`\bDANEMARK\b`, "DANEMARK"),
	}

	got := allAttrs(rules, "CABILLAUD VDK VAT DANEMARK")
	assert.Equal(t, []string{"DANEMARK", "ATLANTIQUE"}, got)
	assert.Equal(t, "DANEMARK, ATLANTIQUE", joinAttrs(got))
}

func TestRangeCalibre(t *testing.T) {
	tests := []struct{ in, want string }{
		{"BAR 400/600", "400/600"},
		{"SAUMON 1,5/2KG", "1,5/2"},
		{"LOTTE 300/+", "300/+"},
		{"TOURTEAU 600/800gr", "600/800gr"},
		{"no grade", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rangeCalibre(tt.in), tt.in)
	}
}
