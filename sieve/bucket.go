package sieve

// bucketHit is one deferred strike: the global flag offset (from the
// start of the line) at which a bucket-sieve prime will next hit, and
// the index of that prime in sieveP so the drain step can recompute
// the following hit.
//
// Grounded on spec.md §4.6. The source packs a 16-bit offset plus
// rotor state into a 32-bit word; per spec.md §3 "the design only
// requires that each entry carry enough to (i) strike the bit, (ii)
// compute the next-hit offset" — and, per the Open Question
// resolution in DESIGN.md, the next-hit offset within one residue
// class's line is a constant stride of p flags, so no rotor state is
// needed here.
type bucketHit struct {
	globalOffset uint64
	primeIdx     int
}

// bucketQueues is the per-block array of deferred-write arenas for
// one bucket tier, owned exclusively by one worker for the duration
// of one residue class.
type bucketQueues struct {
	slots [][]bucketHit
}

func newBucketQueues(blocks uint64, capacityPerBlock int) *bucketQueues {
	slots := make([][]bucketHit, blocks)
	for i := range slots {
		slots[i] = make([]bucketHit, 0, capacityPerBlock)
	}
	return &bucketQueues{slots: slots}
}

// reset zeroes every block's hit count (by truncating the slice)
// without freeing the backing array, so the queues can be reused.
// sieveClass does not call it: it allocates fresh queues for each
// residue class.
func (bq *bucketQueues) reset() {
	for i := range bq.slots {
		bq.slots[i] = bq.slots[i][:0]
	}
}

func (bq *bucketQueues) push(block uint64, h bucketHit) {
	if block >= uint64(len(bq.slots)) {
		return
	}
	if len(bq.slots[block]) == cap(bq.slots[block]) {
		panicInvariant("bucket overflow at block %d (capacity %d)", block, cap(bq.slots[block]))
	}
	bq.slots[block] = append(bq.slots[block], h)
}

// bucketLimits describes which sieving-prime indices fall into C5
// (small-prime sieve), the small-bucket tier, and the large-bucket
// tier, resolving spec.md §9's Open Question: the geometric condition
// p*prodN > blk_r*blocks wins over the BUCKETSTARTI index threshold
// wherever they disagree (soe.c lines 326-339).
type bucketLimits struct {
	smallLimit      int // [startprime, smallLimit) handled by C5
	smallBucketEnd  int // [smallLimit, smallBucketEnd) small-bucket tier
	pboundi         int // [smallBucketEnd, pboundi) large-bucket tier
}

func computeBucketLimits(sieveP []uint32, w wheel, lay layout, bucketStartP uint32, largeBucketsEnabled bool) bucketLimits {
	n := len(sieveP)
	bucketStartIdx := n
	for i := w.startprime; i < n; i++ {
		if sieveP[i] >= bucketStartP {
			bucketStartIdx = i
			break
		}
	}

	lineSpan := lay.blkR * lay.blocks
	geomBreachIdx := n
	for i := w.startprime; i < n; i++ {
		if uint64(sieveP[i])*w.prodN > lineSpan {
			geomBreachIdx = i
			break
		}
	}

	smallLimit := bucketStartIdx
	if geomBreachIdx < smallLimit {
		smallLimit = geomBreachIdx
	}

	smallBucketEnd := geomBreachIdx
	if !largeBucketsEnabled {
		smallBucketEnd = n
	}
	if smallBucketEnd < smallLimit {
		smallBucketEnd = smallLimit
	}

	return bucketLimits{
		smallLimit:     smallLimit,
		smallBucketEnd: smallBucketEnd,
		pboundi:        n,
	}
}

// bucketCapacities computes the per-block preallocation for each
// tier: for the small tier, 1.1 times the average hits per block,
// summing flagsPerLine/p + 1 over the tier's primes; for the large
// tier, max(1.1*avg, 50000) where avg is the tier's prime count per
// block (soe.c lines 353-379).
func bucketCapacities(sieveP []uint32, lim bucketLimits, flagsPerLine uint64, blocks uint64) (smallCap, largeCap int) {
	if lim.smallBucketEnd > lim.smallLimit {
		numHits := uint64(0)
		for i := lim.smallLimit; i < lim.smallBucketEnd; i++ {
			numHits += flagsPerLine/uint64(sieveP[i]) + 1
		}
		hitsPerBucket := numHits / blocks
		smallCap = int(float64(hitsPerBucket) * bucketCapacityMargin)
		if smallCap < 1 {
			smallCap = 1
		}
	}

	numLarge := uint64(lim.pboundi - lim.smallBucketEnd)
	if numLarge > 0 {
		hitsPerBucket := numLarge / blocks
		c := int(float64(hitsPerBucket) * bucketCapacityMargin)
		if c < minLargeBucketAlloc {
			c = minLargeBucketAlloc
		}
		largeCap = c
	}
	return smallCap, largeCap
}

// seedBucketTier computes every bucket-sieve prime's first hit on class
// c's line and enqueues it into the owning tier's queue at the right
// block.
func seedBucketTier(e *engine, c int, lo, hi int, q *bucketQueues) {
	rc := e.w.rclass[c]
	flagsPerBlock := uint64(e.cfg.blockSize) * 8
	for i := lo; i < hi; i++ {
		p := uint64(e.sieveP[i])
		off := firstHitOffset(p, e.rd.root[i], e.rd.lowerModPrime[i], rc)
		off = clampToPSquare(off, p, e.lay, rc)
		block := off / flagsPerBlock
		if block >= e.lay.blocks {
			continue
		}
		q.push(block, bucketHit{globalOffset: off, primeIdx: i})
	}
}

// drainBlock clears every bit this block's queued primes hit (a prime
// smaller than the block's flag count can hit it more than once,
// stepping at constant stride p, see precompute.go), then re-enqueues
// each prime's first hit past this block into that later block if
// there is one.
func drainBlock(e *engine, block uint64, blockBuf []byte, q *bucketQueues) {
	flagsPerBlock := uint64(e.cfg.blockSize) * 8
	blockStart := block * flagsPerBlock
	hits := q.slots[block]
	for _, h := range hits {
		p := uint64(e.sieveP[h.primeIdx])
		next := h.globalOffset
		for next/flagsPerBlock == block {
			clearBit(blockBuf, next-blockStart)
			next += p
		}
		nextBlock := next / flagsPerBlock
		if nextBlock < e.lay.blocks {
			q.push(nextBlock, bucketHit{globalOffset: next, primeIdx: h.primeIdx})
		}
	}
	q.slots[block] = q.slots[block][:0]
}
