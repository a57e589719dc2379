package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverse(t *testing.T) {
	cases := []struct{ a, m uint64 }{
		{3, 11}, {7, 13}, {1, 2}, {209, 210}, {29, 30030},
	}
	for _, c := range cases {
		inv := modInverse(c.a, c.m)
		require.Less(t, inv, c.m)
		assert.EqualValues(t, 1, (c.a%c.m)*inv%c.m)
	}
}

func TestFirstHitOffsetDivisible(t *testing.T) {
	w := selectWheel(1000)
	lay := computeLayout(10007, 20000, w, 64)
	sieveP := []uint32{11, 13, 17, 19, 23}
	rd := computeRoots(append(make([]uint32, w.startprime), sieveP...), w, lay.lo)

	full := append(make([]uint32, w.startprime), sieveP...)
	for i := w.startprime; i < len(full); i++ {
		p := uint64(full[i])
		for _, rc := range w.rclass {
			off := firstHitOffset(p, rd.root[i], rd.lowerModPrime[i], rc)
			n := lay.lo + off*w.prodN + rc
			assert.Zerof(t, n%p, "p=%d rc=%d n=%d", p, rc, n)
			assert.GreaterOrEqual(t, n, lay.lo)
		}
	}
}

func TestClampToPSquareNeverBelowSquare(t *testing.T) {
	w := selectWheel(1000)
	lay := computeLayout(0, 100000, w, 64)
	sieveP := append(make([]uint32, w.startprime), uint32(11), 13, 101)
	rd := computeRoots(sieveP, w, lay.lo)

	for i := w.startprime; i < len(sieveP); i++ {
		p := uint64(sieveP[i])
		for _, rc := range w.rclass {
			off := firstHitOffset(p, rd.root[i], rd.lowerModPrime[i], rc)
			clamped := clampToPSquare(off, p, lay, rc)
			n := lay.lo + clamped*w.prodN + rc
			assert.GreaterOrEqual(t, n, p*p)
			assert.Zero(t, n%p)
		}
	}
}
