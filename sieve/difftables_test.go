package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResIDMod210MapsCoprimeResiduesBijectively(t *testing.T) {
	r := coprimeResidues(210)
	seen := make(map[int]bool)
	for m := uint64(0); m < 210; m++ {
		j := resIDMod210[m]
		if gcdUint64(m, 210) == 1 {
			if assert.GreaterOrEqualf(t, j, 0, "residue %d should have a slot", m) {
				assert.Equal(t, r[j], m, "resIDMod210[%d] should map back to itself via coprimeResidues", m)
				assert.False(t, seen[j], "duplicate slot %d", j)
				seen[j] = true
			}
		} else {
			assert.Equal(t, -1, j, "residue %d is not coprime to 210 and must have no slot", m)
		}
	}
	assert.Len(t, seen, len(r))
}

func TestResIDMod30MapsCoprimeResiduesBijectively(t *testing.T) {
	r := coprimeResidues(30)
	seen := make(map[int]bool)
	for m := uint64(0); m < 30; m++ {
		j := resIDMod30[m]
		if gcdUint64(m, 30) == 1 {
			if assert.GreaterOrEqualf(t, j, 0, "residue %d should have a slot", m) {
				assert.Equal(t, r[j], m)
				assert.False(t, seen[j])
				seen[j] = true
			}
		} else {
			assert.Equal(t, -1, j)
		}
	}
	assert.Len(t, seen, len(r))
}
