package sieve

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateRange(t *testing.T) {
	assert.NoError(t, validateRange(0, 10))
	assert.NoError(t, validateRange(5, 5))

	err := validateRange(10, 5)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	err = validateRange(0, maxHi+1)
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestInvariantViolationPanicsWithTypedError(t *testing.T) {
	defer func() {
		r := recover()
		if assert.NotNil(t, r) {
			iv, ok := r.(*invariantViolation)
			if assert.True(t, ok) {
				assert.Contains(t, iv.Error(), "something broke")
			}
		}
	}()
	panicInvariant("something broke: %d", 42)
}
