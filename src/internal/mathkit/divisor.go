// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mathkit

import "math/big"

// GCD returns the greatest common divisor of |a| and |b| using the
// Euclidean algorithm. GCD(0, 0) is 0. The operands are not modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Rem(x, y)
		x, y = y, x
	}
	return x
}

// LCMOfTwo returns the least common multiple of a and b.
// It is 0 when either operand is 0, otherwise |a*b| / gcd(a, b).
func LCMOfTwo(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	prod := new(big.Int).Mul(a, b)
	prod.Abs(prod)
	return prod.Quo(prod, GCD(a, b))
}

// LCMOfSlice folds items left to right through [LCMOfTwo], starting from
// the absolute value of the first element.
//
// Returns:
//   - *big.Int: The least common multiple of all elements
//   - error: [ErrEmpty] for an empty slice, [ErrNegative] when any element
//     after the first is negative
func LCMOfSlice(items []*big.Int) (*big.Int, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	result := new(big.Int).Abs(items[0])
	for _, v := range items[1:] {
		if v.Sign() < 0 {
			return nil, ErrNegative
		}
		result = LCMOfTwo(result, v)
	}
	return result, nil
}

// HCFOfSlice folds items left to right through [GCD], starting from the
// absolute value of the first element. Unlike [LCMOfSlice] it accepts
// negative elements; GCD already works on absolute values.
//
// Returns:
//   - *big.Int: The highest common factor of all elements
//   - error: [ErrEmpty] for an empty slice
func HCFOfSlice(items []*big.Int) (*big.Int, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	result := new(big.Int).Abs(items[0])
	for _, v := range items[1:] {
		result = GCD(result, v)
	}
	return result, nil
}
