package sieve

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// engine bundles everything a per-class worker step (C5+C6+C7) needs
// for one Sieve call: wheel geometry, line layout, the sieving-prime
// list and its precomputed roots, and the active configuration.
type engine struct {
	w      wheel
	lay    layout
	sieveP []uint32
	rd     rootData
	cfg    *config
}

// Result is the outcome of one Sieve call.
type Result struct {
	// Count is the number of primes in [lo, hi].
	Count uint64
	// Primes holds the ascending list of primes in [lo, hi]; nil
	// unless mode == Enumerate.
	Primes []uint64
	// EffectiveHi is the block-aligned upper bound actually sieved
	// internally (>= hi), exposed for diagnostics.
	EffectiveHi uint64
	// Bins holds 10^9-wide prime counts when WithSpecialCount(true)
	// was passed; nil otherwise.
	Bins []uint64
}

// classResult is one residue class's contribution, computed entirely
// independently of every other class so it can run on any worker.
type classResult struct {
	count  uint64
	primes []uint64
	bins   []uint64
}

// Sieve counts or enumerates the primes in [lo, hi] using a segmented,
// wheel-accelerated, multithreaded Sieve of Eratosthenes.
func Sieve(ctx context.Context, lo, hi uint64, mode Mode, opts ...Option) (Result, error) {
	if err := validateRange(lo, hi); err != nil {
		return Result{}, errors.Wrapf(err, "Sieve(lo=%d, hi=%d, mode=%s)", lo, hi, mode)
	}
	if hi-lo > maxWidth {
		return Result{}, errors.Wrapf(ErrTooLarge, "Sieve(lo=%d, hi=%d, mode=%s): width %d exceeds %d", lo, hi, mode, hi-lo, uint64(maxWidth))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.log

	w := selectWheel(hi - lo)
	lay := computeLayout(lo, hi, w, cfg.blockSize)

	pbound := uint64(math.Sqrt(float64(lay.hi))) + 1

	sieveP, err := seedPrimes(ctx, pbound)
	if err != nil {
		return Result{}, errors.Wrapf(err, "Sieve(lo=%d, hi=%d, mode=%s): seeding primes to %d", lo, hi, mode, pbound)
	}
	log.WithFields(logrus.Fields{
		"pbound":           pbound,
		"num_sieve_primes": len(sieveP),
	}).Trace("seeded sieving primes")

	rd := computeRoots(sieveP, w, lay.lo)
	e := &engine{w: w, lay: lay, sieveP: sieveP, rd: rd, cfg: cfg}

	lim := computeBucketLimits(sieveP, w, lay, cfg.bucketStartP, cfg.doLargeBuckets)
	flagsPerLine := lay.numLineBytes * 8
	smallCap, largeCap := bucketCapacities(sieveP, lim, flagsPerLine, lay.blocks)

	log.WithFields(logrus.Fields{
		"small_limit":      lim.smallLimit,
		"small_bucket_end": lim.smallBucketEnd,
		"pboundi":          lim.pboundi,
		"small_bucket_cap": smallCap,
		"large_bucket_cap": largeCap,
		"line_bytes":       lay.numLineBytes,
		"blocks":           lay.blocks,
		"num_classes":      w.numclasses,
	}).Trace("sieve allocation plan")

	numBins := 0
	if cfg.doSpecialCount {
		numBins = numSpecialCountBins(lay.origLo, lay.origHi)
	}

	results := make([]classResult, w.numclasses)
	jobs := make([]job, w.numclasses)
	for c := 0; c < int(w.numclasses); c++ {
		c := c
		jobs[c] = func() {
			results[c] = sieveClass(e, c, lim, smallCap, largeCap, mode, numBins)
		}
	}

	pool := newWorkerPool(cfg.threads)
	defer pool.close()

	batchSize := cfg.threads
	if batchSize < 1 {
		batchSize = 1
	}
	for start := 0; start < len(jobs); start += batchSize {
		select {
		case <-ctx.Done():
			return Result{}, errors.Wrapf(ctx.Err(), "Sieve(lo=%d, hi=%d, mode=%s): canceled", lo, hi, mode)
		default:
		}
		end := start + batchSize
		if end > len(jobs) {
			end = len(jobs)
		}
		pool.runBatches(jobs[start:end])
	}

	var total uint64
	var lists [][]uint64
	bins := make([]uint64, numBins)
	for _, r := range results {
		total += r.count
		if mode == Enumerate {
			lists = append(lists, r.primes)
		}
		for i, v := range r.bins {
			bins[i] += v
		}
	}
	total += countSievePrimes(sieveP, w.startprime, lay.origLo, lay.origHi)

	res := Result{Count: total, EffectiveHi: lay.hi}
	if mode == Enumerate {
		res.Primes = injectSievePrimes(mergeAll(lists), sieveP, w.startprime, lay.origLo, lay.origHi)
	}
	if numBins > 0 {
		// The wheel's basis primes live in no line; bin them here so
		// the bins sum to Count.
		for i := 0; i < w.startprime && i < len(sieveP); i++ {
			p := uint64(sieveP[i])
			if p >= lay.origLo && p <= lay.origHi {
				bins[(p-lay.origLo)/1_000_000_000]++
			}
		}
		res.Bins = bins
	}
	return res, nil
}

// sieveClass runs C5+C6+C7 end to end for one residue class: allocate
// the line, strike every sieving prime's multiples via the small-prime
// pass and the bucket tiers, then read off the window the caller
// originally asked for.
func sieveClass(e *engine, c int, lim bucketLimits, smallCap, largeCap int, mode Mode, numBins int) classResult {
	line := make([]byte, e.lay.numLineBytes)
	for i := range line {
		line[i] = 0xFF
	}

	flagsPerBlock := uint64(e.cfg.blockSize) * 8

	small := newSmallSieveState(len(e.sieveP))
	small.initClass(e, c, lim.smallLimit)

	var smallBucket, largeBucket *bucketQueues
	if smallCap > 0 && lim.smallBucketEnd > lim.smallLimit {
		smallBucket = newBucketQueues(e.lay.blocks, smallCap)
		seedBucketTier(e, c, lim.smallLimit, lim.smallBucketEnd, smallBucket)
	}
	if largeCap > 0 && lim.pboundi > lim.smallBucketEnd {
		largeBucket = newBucketQueues(e.lay.blocks, largeCap)
		seedBucketTier(e, c, lim.smallBucketEnd, lim.pboundi, largeBucket)
	}

	for block := uint64(0); block < e.lay.blocks; block++ {
		start := block * uint64(e.cfg.blockSize)
		end := start + uint64(e.cfg.blockSize)
		buf := line[start:end]

		small.strikeBlock(buf, e, lim.smallLimit, flagsPerBlock)
		if smallBucket != nil {
			drainBlock(e, block, buf, smallBucket)
		}
		if largeBucket != nil {
			drainBlock(e, block, buf, largeBucket)
		}
	}

	rc := e.w.rclass[c]
	numFlags := e.lay.numLineBytes * 8
	win := windowForClass(e.lay, rc, numFlags)

	var res classResult
	if numBins > 0 {
		res.bins = make([]uint64, numBins)
		binCount(line, e.lay, rc, win, res.bins)
	}
	if mode == Enumerate {
		res.primes = extractWindow(line, e.lay, rc, win)
		res.count = uint64(len(res.primes))
	} else {
		res.count = popcountWindow(line, win)
	}
	return res
}
