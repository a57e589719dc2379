package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTwoAscending(t *testing.T) {
	a := []uint64{2, 5, 9, 20}
	b := []uint64{3, 4, 9, 21}
	got := mergeTwo(a, b)
	want := []uint64{2, 3, 4, 5, 9, 9, 20, 21}
	assert.Equal(t, want, got)
}

func TestMergeTwoEmptyInputs(t *testing.T) {
	assert.Equal(t, []uint64{1, 2}, mergeTwo(nil, []uint64{1, 2}))
	assert.Equal(t, []uint64{1, 2}, mergeTwo([]uint64{1, 2}, nil))
	assert.Empty(t, mergeTwo(nil, nil))
}

func TestMergeAllFoldsAllLists(t *testing.T) {
	lists := [][]uint64{{2, 11}, {3, 7}, {5}}
	got := mergeAll(lists)
	want := []uint64{2, 3, 5, 7, 11}
	assert.Equal(t, want, got)
}

func TestInjectSievePrimesPrependsWheelBasis(t *testing.T) {
	sieveP := []uint32{2, 3, 5, 7, 11, 13}
	merged := []uint64{17, 19, 23}
	got := injectSievePrimes(merged, sieveP, 4, 0, 100)
	want := []uint64{2, 3, 5, 7, 17, 19, 23}
	assert.Equal(t, want, got)
}

func TestInjectSievePrimesRespectsRange(t *testing.T) {
	sieveP := []uint32{2, 3, 5, 7}
	merged := []uint64{11, 13}
	got := injectSievePrimes(merged, sieveP, 4, 4, 100)
	want := []uint64{5, 7, 11, 13}
	assert.Equal(t, want, got)
}

func TestCountSievePrimes(t *testing.T) {
	sieveP := []uint32{2, 3, 5, 7}
	assert.EqualValues(t, 4, countSievePrimes(sieveP, 4, 0, 100))
	assert.EqualValues(t, 2, countSievePrimes(sieveP, 4, 4, 100))
}
