// Package euclid implements greatest-common-divisor arithmetic over
// unsigned 64-bit integers.
package euclid

import (
	"fmt"
	"math"
)

// GCD returns the greatest common divisor of a and b using the
// Euclidean algorithm by repeated remainder. Both operands must be
// non-zero: a zero operand is a contract violation by the caller, not
// bad input, and panics.
func GCD(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		panic(fmt.Sprintf("euclid: GCD requires non-zero operands, got (%d, %d)", a, b))
	}
	for b != 0 {
		// Order the pair so the divisor is the smaller operand.
		if b < a {
			a, b = b, a
		}
		b = b % a
	}
	return a
}

// Reduce folds nums left to right through GCD, starting from the first
// element. The sequence must be non-empty. GCD is associative and
// commutative, so any permutation of nums yields the same result.
//
// A zero anywhere in nums reaches GCD and trips its precondition.
func Reduce(nums []uint64) uint64 {
	if len(nums) == 0 {
		panic("euclid: Reduce requires a non-empty sequence")
	}
	acc := nums[0]
	for _, m := range nums[1:] {
		acc = GCD(acc, m)
	}
	return acc
}

// LCM returns the least common multiple of a and b. Both operands must
// be non-zero. Unlike GCD the result can exceed 64 bits, so overflow
// is reported as an error.
func LCM(a, b uint64) (uint64, error) {
	q := a / GCD(a, b)
	if q > math.MaxUint64/b {
		return 0, fmt.Errorf("least common multiple of %d and %d overflows uint64", a, b)
	}
	return q * b, nil
}

// ReduceLCM folds nums left to right through LCM. The sequence must be
// non-empty. The fold stops at the first overflow.
func ReduceLCM(nums []uint64) (uint64, error) {
	if len(nums) == 0 {
		panic("euclid: ReduceLCM requires a non-empty sequence")
	}
	acc := nums[0]
	for _, m := range nums[1:] {
		var err error
		if acc, err = LCM(acc, m); err != nil {
			return 0, err
		}
	}
	return acc, nil
}
