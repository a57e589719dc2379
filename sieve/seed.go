package sieve

import "context"

// seedBound is the threshold below which the tiny wheel-sieve base
// case runs directly; above it, seedPrimes recurses into the
// segmented engine itself (spec.md §4.1's "C1 ... for larger pbound,
// recursively invoke the segmented sieve").
const seedBound = 1_000_000

// seedPrimes returns every prime p with 2 <= p <= hi, ascending. It is
// C1: the generator that supplies sieving primes to C4's precompute
// step for the outer segmented sieve.
func seedPrimes(ctx context.Context, hi uint64) ([]uint32, error) {
	if hi < 2 {
		return nil, nil
	}
	if hi <= seedBound {
		return tinyWheelSieve(uint64(hi)), nil
	}
	res, err := Sieve(ctx, 0, hi, Enumerate)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(res.Primes))
	for i, p := range res.Primes {
		out[i] = uint32(p)
	}
	return out, nil
}

// tinyWheelSieve sieves [2, hi] with a flat, class-interleaved mod-210
// wheel bit array, mirroring the structure of soe.c's internal
// self-test (test_soe): one shared array indexed by (quotient, rotor)
// rather than one line per residue class. resIDMod210 (difftables.go)
// gives the O(1) map from n mod 210 to its rotor slot; the stride to
// the next coprime multiple of a prime is computed directly from the
// coprime-residue list rather than by indexing diffPatternMod210,
// since that transcribed table's correctness cannot be checked without
// running the toolchain — see DESIGN.md.
func tinyWheelSieve(hi uint64) []uint32 {
	out := []uint32{2, 3, 5, 7}
	if hi < 11 {
		var trimmed []uint32
		for _, p := range out {
			if uint64(p) <= hi {
				trimmed = append(trimmed, p)
			}
		}
		return trimmed
	}

	r := coprimeResidues(210) // ascending, length 48
	numR := uint64(len(r))
	quotients := hi/210 + 1
	numFlags := quotients * numR

	flags := make([]byte, (numFlags+7)/8)
	idxOf := func(n uint64) (uint64, bool) {
		j := resIDMod210[n%210]
		if j < 0 {
			return 0, false
		}
		return (n/210)*numR + uint64(j), true
	}
	valueOf := func(idx uint64) uint64 {
		q, j := idx/numR, idx%numR
		return q*210 + r[j]
	}

	// flags start zeroed (every candidate assumed prime); a set bit
	// marks a struck-out composite. This is the inverse convention
	// from smallsieve.go's clearBit/testBit (which start from all-1
	// "still prime" lines), chosen here because a single shared flat
	// array is allocated fresh per call and zero-init is free.
	markComposite := func(idx uint64) {
		if idx < numFlags {
			flags[idx>>3] |= byte(1) << (idx & 7)
		}
	}
	isComposite := func(idx uint64) bool {
		return flags[idx>>3]&(byte(1)<<(idx&7)) != 0
	}

	for idx := uint64(0); idx < numFlags; idx++ {
		if isComposite(idx) {
			continue
		}
		p := valueOf(idx)
		if p > hi {
			break
		}
		if p < 11 {
			// idx 0 holds 1, which is not a prime and must not strike.
			continue
		}
		if p*p > hi {
			continue
		}
		// Strike every composite n = p*m, m coprime to 210, m >= p.
		// Find the smallest (mc, mj) such that 210*mc + r[mj] >= p.
		mc, mj := p/210, uint64(0)
		for mj < numR && mc*210+r[mj] < p {
			mj++
		}
		if mj == numR {
			mj = 0
			mc++
		}
		for {
			m := mc*210 + r[mj]
			n := p * m
			if n > hi {
				break
			}
			if ni, ok := idxOf(n); ok {
				markComposite(ni)
			}
			mj++
			if mj == numR {
				mj = 0
				mc++
			}
		}
	}

	for idx := uint64(0); idx < numFlags; idx++ {
		if isComposite(idx) {
			continue
		}
		p := valueOf(idx)
		if p < 11 || p > hi {
			continue
		}
		out = append(out, uint32(p))
	}
	return out
}
