// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import "math/big"

// Recognized request keys, in the order they are reported.
const (
	KeyFibonacci = "fibonacci"
	KeyPrime     = "prime"
	KeyLCM       = "lcm"
	KeyHCF       = "hcf"
	KeyAI        = "AI"
)

// Keys lists every recognized key in reporting order.
var Keys = []string{KeyFibonacci, KeyPrime, KeyLCM, KeyHCF, KeyAI}

// Limits applied while validating.
const (
	MaxFibonacci   = 10000
	MaxItems       = 100
	MaxQuestionLen = 2000
)

// Operation is a validated, range-checked request for exactly one computation.
//
// The set of implementations is closed: [Fibonacci], [Prime], [LCM], [HCF]
// and [AIQuery]. Consumers type-switch over it.
type Operation interface {
	// Key returns the request key the operation was built from.
	Key() string
	operation()
}

// Fibonacci requests the sequence F(0)..F(N), 0 <= N <= MaxFibonacci.
type Fibonacci struct{ N int }

// Prime requests the prime elements of Items.
type Prime struct{ Items []*big.Int }

// LCM requests the least common multiple of Items.
type LCM struct{ Items []*big.Int }

// HCF requests the highest common factor of Items.
type HCF struct{ Items []*big.Int }

// AIQuery requests a one-word answer to a trimmed, non-empty Question.
type AIQuery struct{ Question string }

func (Fibonacci) Key() string { return KeyFibonacci }
func (Prime) Key() string     { return KeyPrime }
func (LCM) Key() string       { return KeyLCM }
func (HCF) Key() string       { return KeyHCF }
func (AIQuery) Key() string   { return KeyAI }

func (Fibonacci) operation() {}
func (Prime) operation()     {}
func (LCM) operation()       {}
func (HCF) operation()       {}
func (AIQuery) operation()   {}
