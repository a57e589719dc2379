package sieve

// mergeTwo merges two ascending slices into one ascending slice. C9 is
// specified as a pairwise-cumulative two-pointer merge, not a k-way
// heap merge, so mergeAll below folds the per-class lists together one
// pair at a time (spec.md §4.9).
func mergeTwo(a, b []uint64) []uint64 {
	out := make([]uint64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// mergeAll folds a set of per-class ascending prime lists into one
// globally ascending list by repeated pairwise merge.
func mergeAll(lists [][]uint64) []uint64 {
	if len(lists) == 0 {
		return nil
	}
	acc := lists[0]
	for i := 1; i < len(lists); i++ {
		acc = mergeTwo(acc, lists[i])
	}
	return acc
}

// injectSievePrimes prepends the wheel's own basis primes (the ones
// dividing prodN, which never appear in any residue-class line since
// every class is coprime to prodN) that fall in [lo, hi], per spec.md
// §4.9's "the small primes used to build the wheel are injected
// separately at the end of the merge."
func injectSievePrimes(merged []uint64, sieveP []uint32, startprime int, lo, hi uint64) []uint64 {
	var small []uint64
	for i := 0; i < startprime && i < len(sieveP); i++ {
		p := uint64(sieveP[i])
		if p >= lo && p <= hi {
			small = append(small, p)
		}
	}
	if len(small) == 0 {
		return merged
	}
	return mergeTwo(small, merged)
}

// countSievePrimes reports how many of the wheel's basis primes fall
// in [lo, hi], for COUNT mode where the full list need not be built.
func countSievePrimes(sieveP []uint32, startprime int, lo, hi uint64) uint64 {
	var n uint64
	for i := 0; i < startprime && i < len(sieveP); i++ {
		p := uint64(sieveP[i])
		if p >= lo && p <= hi {
			n++
		}
	}
	return n
}
