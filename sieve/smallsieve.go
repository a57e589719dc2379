package sieve

// clearBit clears flag bit k (little-endian within byte) in line.
func clearBit(line []byte, k uint64) {
	line[k>>3] &^= byte(1) << (k & 7)
}

// testBit reports whether flag bit k is still set.
func testBit(line []byte, k uint64) bool {
	return line[k>>3]&(byte(1)<<(k&7)) != 0
}

// smallSieveState carries, for one residue class, the per-prime
// "offset into the current block" for every sieving prime handled by
// C5 (index < smallLimit). It is reset once per class and advanced
// block by block.
type smallSieveState struct {
	offsets []uint64 // length len(sieveP); only [startprime, smallLimit) used
}

func newSmallSieveState(n int) *smallSieveState {
	return &smallSieveState{offsets: make([]uint64, n)}
}

// initClass computes the starting offsets for class c's line, block 0.
func (s *smallSieveState) initClass(e *engine, c int, smallLimit int) {
	rc := e.w.rclass[c]
	for i := e.w.startprime; i < smallLimit; i++ {
		p := uint64(e.sieveP[i])
		off := firstHitOffset(p, e.rd.root[i], e.rd.lowerModPrime[i], rc)
		s.offsets[i] = clampToPSquare(off, p, e.lay, rc)
	}
}

// strikeBlock runs C5 over one block of one class's line: for every
// sieving prime in [startprime, smallLimit), clear every bit it hits
// in this block and carry the leftover offset to the next block.
//
// Grounded on spec.md §4.5: within a residue-class line a sieving
// prime's hits fall at constant stride p (see precompute.go), so the
// "unrolled" advance loop here is a plain stride walk rather than a
// rotor/diff-table mechanism.
func (s *smallSieveState) strikeBlock(block []byte, e *engine, smallLimit int, flagsPerBlock uint64) {
	for i := e.w.startprime; i < smallLimit; i++ {
		p := uint64(e.sieveP[i])
		o := s.offsets[i]
		for o < flagsPerBlock {
			clearBit(block, o)
			o += p
		}
		s.offsets[i] = o - flagsPerBlock
	}
}
