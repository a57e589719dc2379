package sieve

// layout is the line/block geometry derived by C3 from a wheel and a
// requested [lo, hi]. Grounded on soe.c lines 254-294 and spec.md §4.2.
type layout struct {
	w wheel

	origLo, origHi uint64 // caller's original interval, for clipping
	lo, hi         uint64 // effective, block-aligned interval

	numLineBytes uint64 // bytes per residue-class line
	blocks       uint64 // numLineBytes / blockSize
	blkR         uint64 // integers covered by one block = flagsPerBlock * prodN
	blockSize    int    // bytes per block
}

const minWidth = 1_000_000

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b uint64) uint64 {
	if a == 0 {
		return 0
	}
	return (a-1)/b + 1
}

// roundUp rounds a up to the next multiple of b (b > 0).
func roundUp(a, b uint64) uint64 {
	return ceilDiv(a, b) * b
}

// computeLayout builds the block/line geometry for [lo, hi] under
// wheel w, with blocks sized to blockSize bytes.
func computeLayout(lo, hi uint64, w wheel, blockSize int) layout {
	origLo, origHi := lo, hi
	if hi-lo < minWidth {
		hi = lo + minWidth
	}

	step := w.prodN * w.numclasses
	loPrime := (lo / step) * step

	flagsNeeded := ceilDiv(hi-loPrime, w.prodN)
	numLineBytes := ceilDiv(flagsNeeded, 8)
	numLineBytes = roundUp(numLineBytes, uint64(blockSize))

	hiPrime := loPrime + numLineBytes*8*w.prodN
	blocks := numLineBytes / uint64(blockSize)
	flagsPerBlock := uint64(blockSize) * 8

	return layout{
		w:            w,
		origLo:       origLo,
		origHi:       origHi,
		lo:           loPrime,
		hi:           hiPrime,
		numLineBytes: numLineBytes,
		blocks:       blocks,
		blkR:         flagsPerBlock * w.prodN,
		blockSize:    blockSize,
	}
}
