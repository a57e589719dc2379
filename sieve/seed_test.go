package sieve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPrimeTrialDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	for p := uint64(2); p*p <= n; p++ {
		if n%p == 0 {
			return false
		}
	}
	return true
}

func referencePrimesUpTo(hi uint64) []uint32 {
	var out []uint32
	for n := uint64(2); n <= hi; n++ {
		if isPrimeTrialDivision(n) {
			out = append(out, uint32(n))
		}
	}
	return out
}

func TestTinyWheelSieveMatchesTrialDivision(t *testing.T) {
	for _, hi := range []uint64{1, 2, 10, 100, 1000, 10007} {
		got := tinyWheelSieve(hi)
		want := referencePrimesUpTo(hi)
		assert.Equalf(t, want, got, "hi=%d", hi)
	}
}

func TestSeedPrimesSmallDelegatesToTinyWheelSieve(t *testing.T) {
	got, err := seedPrimes(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, tinyWheelSieve(1000), got)
}

func TestSeedPrimesEmptyBelowTwo(t *testing.T) {
	got, err := seedPrimes(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
