// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// maxIntegerBits bounds the integers accepted from prefixed strings. Larger
// values have no finite double representation, the same limit decimal
// input hits when it overflows to infinity.
const maxIntegerBits = 1024

var (
	decimalRe  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	prefixedRe = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
	plainIntRe = regexp.MustCompile(`^[+-]?\d+$`)
)

// toNumber converts v to a float64 using loose numeric coercion.
//
// JSON numbers and numeric strings (decimal with optional exponent, or
// 0x/0o/0b prefixed) coerce; surrounding whitespace in strings is ignored.
// Booleans, null, empty strings, arrays and objects never coerce, even
// though some languages would turn them into 0 or 1.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case bool, nil:
		return 0, false
	case json.Number:
		return parseNumeric(n.String())
	case string:
		return parseNumeric(n)
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return toNumber(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimFunc(s, isTrimmable)
	switch {
	case decimalRe.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case prefixedRe.MatchString(s):
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(u), true
	default:
		return 0, false
	}
}

// toInteger coerces v to an integral float64. Fractional values fail.
// The magnitude is not bounded here; callers apply their own range checks.
func toInteger(v any) (float64, bool) {
	f, ok := toNumber(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return f, true
}

// toNonNegativeInteger coerces v to an exact non-negative integer.
//
// It accepts the same inputs as [toInteger]. Plain integer literals keep
// every digit, so values beyond 2^53 are not rounded; other forms (exponent
// or integral decimal) take the value of their nearest double.
func toNonNegativeInteger(v any) (*big.Int, bool) {
	var n *big.Int
	switch x := v.(type) {
	case json.Number:
		n = parseInteger(x.String())
	case string:
		n = parseInteger(x)
	case int:
		n = big.NewInt(int64(x))
	case int64:
		n = big.NewInt(x)
	case int32:
		n = big.NewInt(int64(x))
	case uint:
		n = new(big.Int).SetUint64(uint64(x))
	case uint64:
		n = new(big.Int).SetUint64(x)
	case uint32:
		n = new(big.Int).SetUint64(uint64(x))
	default:
		if f, ok := toInteger(v); ok {
			n, _ = big.NewFloat(f).Int(nil)
		}
	}
	if n == nil || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

func parseInteger(s string) *big.Int {
	s = strings.TrimFunc(s, isTrimmable)
	if prefixedRe.MatchString(s) {
		n, ok := new(big.Int).SetString(s, 0)
		if !ok || n.BitLen() > maxIntegerBits {
			return nil
		}
		return n
	}

	f, ok := parseNumeric(s)
	if !ok || f != math.Trunc(f) {
		return nil
	}
	if plainIntRe.MatchString(s) {
		n, ok := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 10)
		if !ok {
			return nil
		}
		return n
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n
}
