// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mathkit

import "math/big"

// trialDivisionLimit bounds the inputs checked by plain trial division.
// Above it the odd-divisor loop needs tens of millions of iterations,
// so IsPrime switches to [big.Int.ProbablyPrime].
const trialDivisionLimit = 1 << 32

// millerRabinRounds is passed to ProbablyPrime. Below 2^64 the Baillie-PSW
// test it always runs is exact; above, the error bound is 4^-20.
const millerRabinRounds = 20

// IsPrime reports whether x is a prime number.
//
// Values below 2 are never prime, 2 is the only even prime, and odd values
// below 2^32 are checked by dividing by odd candidates up to the square
// root of x.
func IsPrime(x *big.Int) bool {
	if x.Sign() <= 0 || !x.IsUint64() {
		return x.Sign() > 0 && x.ProbablyPrime(millerRabinRounds)
	}

	n := x.Uint64()
	switch {
	case n < 2:
		return false
	case n == 2:
		return true
	case n%2 == 0:
		return false
	case n >= trialDivisionLimit:
		return x.ProbablyPrime(millerRabinRounds)
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimesFromSlice returns the prime elements of items in their input order.
// Elements that are negative or not prime are dropped without error.
// The result is never nil, so it encodes as an empty JSON array.
func PrimesFromSlice(items []*big.Int) []*big.Int {
	out := make([]*big.Int, 0, len(items))
	for _, v := range items {
		if IsPrime(v) {
			out = append(out, v)
		}
	}
	return out
}
