package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketQueuesPushResetOverflow(t *testing.T) {
	q := newBucketQueues(3, 2)
	q.push(0, bucketHit{globalOffset: 5, primeIdx: 0})
	q.push(0, bucketHit{globalOffset: 11, primeIdx: 1})
	assert.Len(t, q.slots[0], 2)

	assert.Panics(t, func() {
		q.push(0, bucketHit{globalOffset: 17, primeIdx: 2})
	})

	q.reset()
	assert.Len(t, q.slots[0], 0)
	assert.Equal(t, 2, cap(q.slots[0]))
}

func TestBucketQueuesPushOutOfRangeIgnored(t *testing.T) {
	q := newBucketQueues(2, 2)
	assert.NotPanics(t, func() {
		q.push(5, bucketHit{globalOffset: 1})
	})
}

func TestComputeBucketLimitsGeometricPrecedence(t *testing.T) {
	w := selectWheel(1000)
	lay := computeLayout(0, 100000, w, 64)
	// sieveP chosen so the geometric breach (p*prodN > blkR*blocks)
	// happens before the bucketStartP index threshold would.
	sieveP := append(make([]uint32, w.startprime), uint32(11), 13, 1_000_000, 2_000_000)

	lim := computeBucketLimits(sieveP, w, lay, 1<<20, true)
	lineSpan := lay.blkR * lay.blocks
	for i := w.startprime; i < lim.smallLimit; i++ {
		assert.LessOrEqual(t, uint64(sieveP[i])*w.prodN, lineSpan)
	}
	if lim.smallLimit < len(sieveP) {
		assert.Greater(t, uint64(sieveP[lim.smallLimit])*w.prodN, lineSpan)
	}
}

func TestBucketCapacitiesRespectsMinimum(t *testing.T) {
	w := selectWheel(1000)
	lay := computeLayout(0, 100000, w, 64)
	sieveP := append(make([]uint32, w.startprime), uint32(101), 103, 107)
	lim := bucketLimits{smallLimit: w.startprime, smallBucketEnd: w.startprime, pboundi: len(sieveP)}

	flagsPerLine := lay.numLineBytes * 8
	_, largeCap := bucketCapacities(sieveP, lim, flagsPerLine, lay.blocks)
	require.GreaterOrEqual(t, largeCap, minLargeBucketAlloc)
}

func TestSeedAndDrainBucketClearsHits(t *testing.T) {
	w := selectWheel(1000)
	lay := computeLayout(0, 100000, w, 64)
	sieveP := append(make([]uint32, w.startprime), uint32(101), 103)
	rd := computeRoots(sieveP, w, lay.lo)
	cfg := defaultConfig()
	cfg.blockSize = lay.blockSize
	e := &engine{w: w, lay: lay, sieveP: sieveP, rd: rd, cfg: cfg}

	c := 0
	q := newBucketQueues(lay.blocks, 16)
	seedBucketTier(e, c, w.startprime, len(sieveP), q)

	line := make([]byte, lay.numLineBytes)
	for i := range line {
		line[i] = 0xFF
	}
	for block := uint64(0); block < lay.blocks; block++ {
		buf := line[block*uint64(cfg.blockSize) : (block+1)*uint64(cfg.blockSize)]
		drainBlock(e, block, buf, q)
	}

	rc := w.rclass[c]
	numFlags := lay.numLineBytes * 8
	for i := w.startprime; i < len(sieveP); i++ {
		p := uint64(sieveP[i])
		off := firstHitOffset(p, rd.root[i], rd.lowerModPrime[i], rc)
		off = clampToPSquare(off, p, lay, rc)
		if off < numFlags {
			assert.False(t, testBit(line, off))
		}
	}
}
