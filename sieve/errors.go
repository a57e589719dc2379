package sieve

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned at the sieve boundary. Callers should use
// errors.Is against these, not string matching.
var (
	// ErrTooLarge is returned when hi exceeds the supported bound or
	// the seed-prime recursion would itself need primes beyond it.
	ErrTooLarge = errors.New("sieve: interval too large")

	// ErrInvalidRange is returned when hi < lo.
	ErrInvalidRange = errors.New("sieve: invalid range")

	// ErrOutOfMemory is the sentinel for a failed allocation. No
	// function in this package returns it.
	ErrOutOfMemory = errors.New("sieve: out of memory")
)

// maxHi is the absolute ceiling on hi, per spec.md: enumerations
// beyond 4*10^18 are out of scope.
const maxHi = 4_000_000_000_000_000_000

// maxWidth is the absolute ceiling on hi-lo.
const maxWidth = 1_000_000_000_000

// invariantViolation is a programmer error: a broken invariant inside
// the bucket sieve (overflow, out-of-range offset, non-monotone
// line). It is never recovered inside the library; it is only ever
// caught by tests exercising the invariant directly.
type invariantViolation struct {
	what string
}

func (e *invariantViolation) Error() string {
	return fmt.Sprintf("sieve: invariant violation: %s", e.what)
}

func panicInvariant(format string, args ...interface{}) {
	panic(&invariantViolation{what: fmt.Sprintf(format, args...)})
}

func validateRange(lo, hi uint64) error {
	if hi < lo {
		return errors.Wrapf(ErrInvalidRange, "lo=%d hi=%d", lo, hi)
	}
	if hi > maxHi {
		return errors.Wrapf(ErrTooLarge, "hi=%d exceeds %d", hi, uint64(maxHi))
	}
	return nil
}
