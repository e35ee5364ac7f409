package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "VIDE", StripAccents("VIDÉ"))
	assert.Equal(t, "eviscere", StripAccents("éviscéré"))
	assert.Equal(t, "NORVEGE", StripAccents("NORVÈGE"))
	assert.Equal(t, "plain", StripAccents("plain"))
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "VIDE", NormalizeValue("  vidé "))
	assert.Equal(t, "SAUMON SUPERIEUR", NormalizeValue("Saumon Supérieur"))
	assert.Equal(t, "", NormalizeValue("   "))
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"TURBOT 2/3 LIGNE", "turbot_2_3_ligne"},
		{"FILET SAUMON TRIM C", "filet_saumon_trim_c"},
		{"ST PIERRE (PB)", "st_pierre_pb"},
		{"PELÉE", "pelee"},
		{"  BAR  ", "bar"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCode(tt.in), tt.in)
	}
}

func TestInfoTrail(t *testing.T) {
	var trail infoTrail
	assert.Equal(t, "", trail.String())

	trail.add("Méthode", "LIGNE")
	trail.add("Qualité", "")
	trail.add("Calibre", "2/3")
	assert.Equal(t, "Méthode:LIGNE | Calibre:2/3", trail.String())
}
