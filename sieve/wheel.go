package sieve

// wheel holds the immutable parameters chosen by C2: the product of
// the first startprime primes, the count of residues coprime to it,
// and the ascending list of those residues. Grounded on soe.c lines
// 64-94 (the threshold table) and spec.md §4.1.
type wheel struct {
	prodN      uint64
	numclasses uint64
	startprime int
	rclass     []uint64
}

// selectWheel picks (prodN, numclasses, startprime) from the interval
// width, per the table in spec.md §4.1.
func selectWheel(width uint64) wheel {
	var prodN, numclasses uint64
	var startprime int
	switch {
	case width > 400_000_000_000:
		prodN, numclasses, startprime = 30030, 5760, 6
	case width > 40_000_000_000:
		prodN, numclasses, startprime = 2310, 480, 5
	case width > 4_000_000_000:
		prodN, numclasses, startprime = 210, 48, 4
	case width > 100_000_000:
		prodN, numclasses, startprime = 30, 8, 3
	default:
		prodN, numclasses, startprime = 6, 2, 2
	}
	return wheel{
		prodN:      prodN,
		numclasses: numclasses,
		startprime: startprime,
		rclass:     coprimeResidues(prodN),
	}
}

// coprimeResidues lists, ascending, every 1 <= r < prodN with
// gcd(r, prodN) == 1. Its length is phi(prodN) == numclasses.
func coprimeResidues(prodN uint64) []uint64 {
	out := make([]uint64, 0, eulerPhi(prodN))
	for r := uint64(1); r < prodN; r++ {
		if gcdUint64(r, prodN) == 1 {
			out = append(out, r)
		}
	}
	return out
}

func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func eulerPhi(n uint64) uint64 {
	result := n
	p := uint64(2)
	m := n
	for p*p <= m {
		if m%p == 0 {
			for m%p == 0 {
				m /= p
			}
			result -= result / p
		}
		p++
	}
	if m > 1 {
		result -= result / m
	}
	return result
}
