// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mathkit

import (
	"errors"
	"math/big"
)

var (
	// ErrNegative is returned when an operation that only accepts
	// non-negative integers receives a negative one.
	ErrNegative = errors.New("mathkit: negative input")
	// ErrEmpty is returned when a fold receives no elements.
	ErrEmpty = errors.New("mathkit: empty input")
)

// Fibonacci returns the Fibonacci sequence F(0)..F(n).
//
// For n = 0 the result is the single term [0]; otherwise it holds n+1 terms
// starting with 0, 1. There is no internal upper bound on n; callers are
// expected to cap it before calling.
//
// Returns:
//   - []*big.Int: The sequence, each term freshly allocated
//   - error: [ErrNegative] if n < 0
func Fibonacci(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	if n == 0 {
		return []*big.Int{big.NewInt(0)}, nil
	}

	out := make([]*big.Int, n+1)
	out[0] = big.NewInt(0)
	out[1] = big.NewInt(1)
	for i := 2; i <= n; i++ {
		out[i] = new(big.Int).Add(out[i-1], out[i-2])
	}
	return out, nil
}
