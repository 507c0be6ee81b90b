// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf16"
)

// ValidationError describes why a request body was rejected.
// Message is safe to return to clients as is.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Validate turns a decoded JSON body into an [Operation].
//
// The body must be a JSON object carrying exactly one recognized key with a
// non-null value; unrecognized keys are ignored. The value of that key is
// then shape and range checked.
//
// Returns:
//   - Operation: The validated operation
//   - error: A *ValidationError describing the first violation found
func Validate(body any) (Operation, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, invalid("Request body must be a JSON object")
	}

	key, err := exactlyOneKey(obj)
	if err != nil {
		return nil, err
	}

	val := obj[key]
	switch key {
	case KeyFibonacci:
		return validateFibonacci(val)
	case KeyPrime:
		items, err := validateIntegerArray(val, key)
		if err != nil {
			return nil, err
		}
		return Prime{Items: items}, nil
	case KeyLCM:
		items, err := validateIntegerArray(val, key)
		if err != nil {
			return nil, err
		}
		return LCM{Items: items}, nil
	case KeyHCF:
		items, err := validateIntegerArray(val, key)
		if err != nil {
			return nil, err
		}
		return HCF{Items: items}, nil
	default:
		return validateQuestion(val)
	}
}

func exactlyOneKey(obj map[string]any) (string, error) {
	present := make([]string, 0, len(Keys))
	for _, k := range Keys {
		if v, ok := obj[k]; ok && v != nil {
			present = append(present, k)
		}
	}

	switch len(present) {
	case 0:
		return "", invalid("Request must contain exactly one of: %s", strings.Join(Keys, ", "))
	case 1:
		return present[0], nil
	default:
		return "", invalid("Request must contain exactly one key, found: %s", strings.Join(present, ", "))
	}
}

func validateFibonacci(v any) (Operation, error) {
	n, ok := toInteger(v)
	if !ok || n < 0 {
		return nil, invalid("fibonacci must be a non-negative integer")
	}
	if n > MaxFibonacci {
		return nil, invalid("fibonacci value too large")
	}
	return Fibonacci{N: int(n)}, nil
}

func validateIntegerArray(v any, key string) ([]*big.Int, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, invalid("%s must be an array", key)
	}
	if len(arr) == 0 {
		return nil, invalid("%s array cannot be empty", key)
	}
	if len(arr) > MaxItems {
		return nil, invalid("%s array too long", key)
	}

	items := make([]*big.Int, len(arr))
	for i, el := range arr {
		n, ok := toNonNegativeInteger(el)
		if !ok {
			return nil, invalid("%s must be an array of non-negative integers", key)
		}
		items[i] = n
	}
	return items, nil
}

func validateQuestion(v any) (Operation, error) {
	s, ok := v.(string)
	if !ok {
		return nil, invalid("AI must be a string (question)")
	}

	s = strings.TrimFunc(s, isTrimmable)
	switch n := utf16Len(s); {
	case n == 0:
		return nil, invalid("AI question cannot be empty")
	case n > MaxQuestionLen:
		return nil, invalid("AI question too long")
	}
	return AIQuery{Question: s}, nil
}

// isTrimmable reports whether r is trimmed from AI questions and numeric
// strings: Unicode white space and line terminators plus the byte order
// mark, but not NEL.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) && r != '\u0085' || r == '\ufeff'
}

// utf16Len counts UTF-16 code units, the unit browsers and most JSON
// clients use when they enforce the same limit.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
