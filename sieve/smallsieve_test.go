package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitOps(t *testing.T) {
	line := []byte{0xFF, 0xFF}
	assert.True(t, testBit(line, 0))
	assert.True(t, testBit(line, 15))
	clearBit(line, 0)
	assert.False(t, testBit(line, 0))
	clearBit(line, 9)
	assert.False(t, testBit(line, 9))
	assert.True(t, testBit(line, 8))
}

func TestStrikeBlockClearsMultiplesOfP(t *testing.T) {
	w := selectWheel(1000)
	lay := computeLayout(0, 100000, w, 64)
	sieveP := append(make([]uint32, w.startprime), uint32(11), 13)
	rd := computeRoots(sieveP, w, lay.lo)
	cfg := defaultConfig()
	cfg.blockSize = lay.blockSize
	e := &engine{w: w, lay: lay, sieveP: sieveP, rd: rd, cfg: cfg}

	smallLimit := len(sieveP)
	flagsPerBlock := uint64(cfg.blockSize) * 8

	for c := 0; c < int(w.numclasses); c++ {
		rc := w.rclass[c]
		line := make([]byte, lay.numLineBytes)
		for i := range line {
			line[i] = 0xFF
		}
		s := newSmallSieveState(len(sieveP))
		s.initClass(e, c, smallLimit)

		for block := uint64(0); block < lay.blocks; block++ {
			buf := line[block*uint64(cfg.blockSize) : (block+1)*uint64(cfg.blockSize)]
			s.strikeBlock(buf, e, smallLimit, flagsPerBlock)
		}

		numFlags := lay.numLineBytes * 8
		for k := uint64(0); k < numFlags; k++ {
			n := lay.lo + k*w.prodN + rc
			for i := w.startprime; i < smallLimit; i++ {
				p := uint64(sieveP[i])
				if n >= p*p && n%p == 0 {
					assert.Falsef(t, testBit(line, k), "expected n=%d (multiple of %d) to be cleared", n, p)
				}
			}
		}
	}
}
