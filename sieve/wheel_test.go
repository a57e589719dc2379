package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWheelThresholds(t *testing.T) {
	cases := []struct {
		width              uint64
		wantProdN          uint64
		wantNumclasses     uint64
		wantStartprime     int
	}{
		{100, 6, 2, 2},
		{100_000_000, 6, 2, 2},
		{100_000_001, 30, 8, 3},
		{4_000_000_000, 30, 8, 3},
		{4_000_000_001, 210, 48, 4},
		{40_000_000_000, 210, 48, 4},
		{40_000_000_001, 2310, 480, 5},
		{400_000_000_000, 2310, 480, 5},
		{400_000_000_001, 30030, 5760, 6},
	}
	for _, c := range cases {
		w := selectWheel(c.width)
		assert.Equalf(t, c.wantProdN, w.prodN, "width=%d", c.width)
		assert.Equalf(t, c.wantNumclasses, w.numclasses, "width=%d", c.width)
		assert.Equalf(t, c.wantStartprime, w.startprime, "width=%d", c.width)
		assert.Len(t, w.rclass, int(c.wantNumclasses))
	}
}

func TestCoprimeResiduesAscendingAndCoprime(t *testing.T) {
	for _, prodN := range []uint64{6, 30, 210, 2310} {
		r := coprimeResidues(prodN)
		require.NotEmpty(t, r)
		assert.EqualValues(t, eulerPhi(prodN), len(r))
		for i, v := range r {
			assert.Equal(t, uint64(1), gcdUint64(v, prodN))
			if i > 0 {
				assert.Less(t, r[i-1], v)
			}
		}
		assert.Equal(t, uint64(1), r[0])
	}
}

func TestEulerPhiKnownValues(t *testing.T) {
	assert.Equal(t, uint64(2), eulerPhi(6))
	assert.Equal(t, uint64(8), eulerPhi(30))
	assert.Equal(t, uint64(48), eulerPhi(210))
	assert.Equal(t, uint64(480), eulerPhi(2310))
	assert.Equal(t, uint64(5760), eulerPhi(30030))
}
