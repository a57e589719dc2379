package sieve

// rootData holds the per-sieving-prime auxiliaries C4 precomputes:
// root[i] = (prodN mod p)^-1 mod p, and lowerModPrime[i] = (lo'/prodN)
// mod p. Grounded on spec.md §4.4; the extended-GCD routine replaces
// the source's ad-hoc xGCD per DESIGN NOTES §9.
type rootData struct {
	root          []uint64
	lowerModPrime []uint64
}

// extGCD returns (g, x) such that a*x + b*y = g = gcd(a, b), using the
// iterative extended Euclidean algorithm. Any correct modular-inverse
// routine satisfies spec.md §4.4's contract; this one stays in
// int64 arithmetic since a, b fit in a uint32 sieving prime and a
// uint64 modulus well within range.
func extGCD(a, b int64) (g, x int64) {
	x0, x1 := int64(1), int64(0)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		x0, x1 = x1, x0-q*x1
	}
	return a, x0
}

// modInverse returns a^-1 mod m for gcd(a, m) == 1, normalized to
// [0, m).
func modInverse(a, m uint64) uint64 {
	_, x := extGCD(int64(a%m), int64(m))
	x %= int64(m)
	if x < 0 {
		x += int64(m)
	}
	return uint64(x)
}

// computeRoots precomputes root[i] and lowerModPrime[i] for every
// sieving prime sieveP[i], i >= startprime. Entries below startprime
// are left zero: they divide prodN and are never used for striking.
func computeRoots(sieveP []uint32, w wheel, loPrime uint64) rootData {
	n := len(sieveP)
	rd := rootData{
		root:          make([]uint64, n),
		lowerModPrime: make([]uint64, n),
	}
	for i := w.startprime; i < n; i++ {
		p := uint64(sieveP[i])
		rd.root[i] = modInverse(w.prodN%p, p)
		rd.lowerModPrime[i] = (loPrime / w.prodN) % p
	}
	return rd
}

// firstHitOffset returns the smallest k >= 0 such that
// lo' + k*prodN + rclass is divisible by p, given p's precomputed
// root and lowerModPrime (spec.md §4.4's O(1) derivation).
func firstHitOffset(p uint64, root, lowerModPrime, rclass uint64) uint64 {
	rr := (rclass % p) * (root % p) % p
	k := (p - rr%p) % p
	k = (k + p - lowerModPrime%p) % p
	return k
}

// clampToPSquare advances a starting offset past p*p: a classic sieve
// never strikes p's own bit, only composite multiples starting at
// p*p, and for small lo (or a sieving prime near pbound, where p*p can
// approach hi even for large lo) the raw firstHitOffset can land
// exactly on p itself. Stride in offset space for fixed p is p flags
// (firstHitOffset's derivation), so this walks forward in steps of p
// until the represented integer reaches p*p.
func clampToPSquare(off, p uint64, lay layout, rclass uint64) uint64 {
	n := lay.lo + off*lay.w.prodN + rclass
	psq := p * p
	if n >= psq {
		return off
	}
	gap := psq - n
	steps := ceilDiv(gap, p*lay.w.prodN)
	return off + steps*p
}
