package walk

import (
	"github.com/aretw0/ghostmap/pkg/domain"
	"lukechampine.com/uint128"
)

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint128.Uint128) uint128.Uint128 {
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

// LCM returns a*b/gcd(a,b), or ErrOverflow when that exceeds 128 bits.
// The LCM with zero is zero.
func LCM(a, b uint128.Uint128) (uint128.Uint128, error) {
	if a.IsZero() || b.IsZero() {
		return uint128.Zero, nil
	}
	q := a.Div(GCD(a, b))
	if q.Cmp(uint128.Max.Div(b)) > 0 {
		return uint128.Zero, domain.ErrOverflow
	}
	return q.Mul(b), nil
}

// LCMOf folds LCM over the values. The LCM of no values is 1.
func LCMOf(values ...uint64) (uint128.Uint128, error) {
	acc := uint128.From64(1)
	for _, v := range values {
		var err error
		if acc, err = LCM(acc, uint128.From64(v)); err != nil {
			return uint128.Zero, err
		}
	}
	return acc, nil
}
