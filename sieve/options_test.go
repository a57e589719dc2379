package sieve

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "COUNT", Count.String())
	assert.Equal(t, "ENUMERATE", Enumerate.String())
}

func TestDefaultConfig(t *testing.T) {
	c := defaultConfig()
	assert.Equal(t, defaultThreads, c.threads)
	assert.Equal(t, defaultBlockSize, c.blockSize)
	assert.EqualValues(t, defaultBucketStartP, c.bucketStartP)
	assert.True(t, c.doLargeBuckets)
	assert.False(t, c.doSpecialCount)
}

func TestOptionsApply(t *testing.T) {
	c := defaultConfig()
	WithThreads(8)(c)
	WithBlockSize(4096)(c)
	WithBucketStart(1000)(c)
	WithSpecialCount(true)(c)
	WithLargeBuckets(false)(c)

	assert.Equal(t, 8, c.threads)
	assert.Equal(t, 4096, c.blockSize)
	assert.EqualValues(t, 1000, c.bucketStartP)
	assert.True(t, c.doSpecialCount)
	assert.False(t, c.doLargeBuckets)
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	c := defaultConfig()
	WithThreads(0)(c)
	WithBlockSize(-1)(c)
	WithBucketStart(0)(c)

	assert.Equal(t, defaultThreads, c.threads)
	assert.Equal(t, defaultBlockSize, c.blockSize)
	assert.EqualValues(t, defaultBucketStartP, c.bucketStartP)
}

func TestWithVerbosityClampsAndSetsLevel(t *testing.T) {
	c := defaultConfig()
	WithVerbosity(-5)(c)
	assert.Equal(t, 0, c.vflag)
	assert.Equal(t, logrus.WarnLevel, c.log.Logger.GetLevel())

	WithVerbosity(99)(c)
	assert.Equal(t, 3, c.vflag)
	assert.Equal(t, logrus.TraceLevel, c.log.Logger.GetLevel())
}

func TestWithLoggerOverride(t *testing.T) {
	c := defaultConfig()
	log := logrus.NewEntry(logrus.New())
	WithLogger(log)(c)
	assert.Same(t, log, c.log)

	WithLogger(nil)(c)
	assert.Same(t, log, c.log)
}
