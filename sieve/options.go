package sieve

import (
	"github.com/sirupsen/logrus"
)

// Mode selects whether Sieve counts or enumerates primes in [lo, hi].
type Mode int

const (
	// Count reports only the number of primes in [lo, hi].
	Count Mode = iota
	// Enumerate reports the ascending list of primes in [lo, hi].
	Enumerate
)

func (m Mode) String() string {
	if m == Count {
		return "COUNT"
	}
	return "ENUMERATE"
}

const (
	defaultThreads       = 4
	defaultBlockSize     = 32768 // bytes; matches a typical 32KB L1 data cache
	defaultBucketStartP  = 1 << 16
	minLargeBucketAlloc  = 50000
	bucketCapacityMargin = 1.10
)

// config holds every knob spec.md's §6 enumerates. It is built from
// functional Options and threaded explicitly through the dispatcher
// and workers — never a package-level global, per DESIGN NOTES §9.
type config struct {
	threads         int
	blockSize       int
	bucketStartP    uint32
	vflag           int
	doSpecialCount  bool
	doLargeBuckets  bool
	log             *logrus.Entry
}

func defaultConfig() *config {
	return &config{
		threads:        defaultThreads,
		blockSize:      defaultBlockSize,
		bucketStartP:   defaultBucketStartP,
		vflag:          0,
		doSpecialCount: false,
		doLargeBuckets: true,
		log:            logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Option configures a Sieve call.
type Option func(*config)

// WithThreads sets the number of long-lived workers in the pool (C8).
// Non-positive values are ignored.
func WithThreads(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.threads = n
		}
	}
}

// WithBlockSize sets the per-block byte count. It should be a power
// of two sized to the host's L1 data cache; non-positive values are
// ignored.
func WithBlockSize(bytes int) Option {
	return func(c *config) {
		if bytes > 0 {
			c.blockSize = bytes
		}
	}
}

// WithBucketStart sets the sieving-prime value above which the
// bucket sieve (C6) activates, subject to the geometric precedence
// rule in bucket.go.
func WithBucketStart(p uint32) Option {
	return func(c *config) {
		if p > 0 {
			c.bucketStartP = p
		}
	}
}

// WithVerbosity sets VFLAG (0..3), purely observational: it controls
// the logrus level of diagnostic output and nothing else.
func WithVerbosity(v int) Option {
	return func(c *config) {
		if v < 0 {
			v = 0
		}
		if v > 3 {
			v = 3
		}
		c.vflag = v
		switch v {
		case 0:
			c.log.Logger.SetLevel(logrus.WarnLevel)
		case 1:
			c.log.Logger.SetLevel(logrus.InfoLevel)
		case 2:
			c.log.Logger.SetLevel(logrus.DebugLevel)
		default:
			c.log.Logger.SetLevel(logrus.TraceLevel)
		}
	}
}

// WithSpecialCount enables 10^9-wide count bins in Count mode.
func WithSpecialCount(on bool) Option {
	return func(c *config) { c.doSpecialCount = on }
}

// WithLargeBuckets toggles the large-prime bucket tier (C6). It is on
// by default; disabling it forces every sieving prime through the
// small-bucket tier or the small-prime sieve.
func WithLargeBuckets(on bool) Option {
	return func(c *config) { c.doLargeBuckets = on }
}

// WithLogger overrides the logrus entry used for diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}
