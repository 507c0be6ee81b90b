// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mathkit provides the pure arithmetic behind the bfhl operations:
// Fibonacci sequences, primality filtering, and GCD/LCM folds over integer slices.
//
// Every function is free of I/O and shared state, so callers may use them
// concurrently without coordination. Results that can outgrow 64 bits
// (Fibonacci terms, least common multiples) are returned as [big.Int] values.
package mathkit
