// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request_test

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/bfhl/src/internal/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode is a test helper that parses body or fails the test.
func decode(t *testing.T, body string) any {
	t.Helper()
	v, err := request.Decode([]byte(body))
	require.NoError(t, err, "decoding %q", body)
	return v
}

func TestValidate_Success(t *testing.T) {
	tests := []struct {
		name string
		body string
		want request.Operation
	}{
		{name: "fibonacci", body: `{"fibonacci": 7}`, want: request.Fibonacci{N: 7}},
		{name: "fibonacci zero", body: `{"fibonacci": 0}`, want: request.Fibonacci{N: 0}},
		{name: "fibonacci max", body: `{"fibonacci": 10000}`, want: request.Fibonacci{N: 10000}},
		{name: "fibonacci numeric string", body: `{"fibonacci": "5"}`, want: request.Fibonacci{N: 5}},
		{name: "fibonacci integral float", body: `{"fibonacci": 5.0}`, want: request.Fibonacci{N: 5}},
		{name: "fibonacci hex string", body: `{"fibonacci": "0x10"}`, want: request.Fibonacci{N: 16}},
		{name: "ai", body: `{"AI": "What is the capital city of Maharashtra?"}`, want: request.AIQuery{Question: "What is the capital city of Maharashtra?"}},
		{name: "ai trimmed", body: `{"AI": "  hello  "}`, want: request.AIQuery{Question: "hello"}},
		{name: "null siblings ignored", body: `{"fibonacci": 3, "prime": null, "AI": null}`, want: request.Fibonacci{N: 3}},
		{name: "unknown keys ignored", body: `{"fibonacci": 3, "extra": true, "ai": "x"}`, want: request.Fibonacci{N: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := request.Validate(decode(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

// itemStrings renders the items of an array operation in decimal.
func itemStrings(t *testing.T, op request.Operation) []string {
	t.Helper()
	var items []*big.Int
	switch op := op.(type) {
	case request.Prime:
		items = op.Items
	case request.LCM:
		items = op.Items
	case request.HCF:
		items = op.Items
	default:
		t.Fatalf("not an array operation: %T", op)
	}

	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.String()
	}
	return out
}

func TestValidate_IntegerArrays(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantKey string
		want    []string
	}{
		{name: "prime", body: `{"prime": [2, 4, 7]}`, wantKey: "prime", want: []string{"2", "4", "7"}},
		{name: "prime string elements", body: `{"prime": ["3", 5]}`, wantKey: "prime", want: []string{"3", "5"}},
		{name: "lcm", body: `{"lcm": [12, 18, 24]}`, wantKey: "lcm", want: []string{"12", "18", "24"}},
		{name: "hcf", body: `{"hcf": [24, 36, 60]}`, wantKey: "hcf", want: []string{"24", "36", "60"}},
		{name: "hcf zeros", body: `{"hcf": [0, 0]}`, wantKey: "hcf", want: []string{"0", "0"}},
		{name: "prime beyond 2^53", body: `{"prime": [9007199254740993]}`, wantKey: "prime", want: []string{"9007199254740993"}},
		{name: "lcm beyond int64", body: `{"lcm": [10000000000000000000, 3]}`, wantKey: "lcm", want: []string{"10000000000000000000", "3"}},
		{name: "hcf beyond uint64", body: `{"hcf": [18446744073709551616, 4]}`, wantKey: "hcf", want: []string{"18446744073709551616", "4"}},
		{name: "exponent element", body: `{"lcm": [1e3, 2]}`, wantKey: "lcm", want: []string{"1000", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := request.Validate(decode(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, op.Key())
			assert.Equal(t, tt.want, itemStrings(t, op))
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "array body", body: `[1, 2]`, wantMsg: "Request body must be a JSON object"},
		{name: "string body", body: `"fibonacci"`, wantMsg: "Request body must be a JSON object"},
		{name: "null body", body: `null`, wantMsg: "Request body must be a JSON object"},
		{name: "empty object", body: `{}`, wantMsg: "Request must contain exactly one of: fibonacci, prime, lcm, hcf, AI"},
		{name: "only nulls", body: `{"fibonacci": null}`, wantMsg: "Request must contain exactly one of: fibonacci, prime, lcm, hcf, AI"},
		{name: "only unknown", body: `{"foo": 1}`, wantMsg: "Request must contain exactly one of: fibonacci, prime, lcm, hcf, AI"},
		{name: "two keys", body: `{"prime": [2], "fibonacci": 3}`, wantMsg: "Request must contain exactly one key, found: fibonacci, prime"},
		{name: "all keys", body: `{"AI": "q", "hcf": [1], "lcm": [1], "prime": [1], "fibonacci": 1}`, wantMsg: "Request must contain exactly one key, found: fibonacci, prime, lcm, hcf, AI"},

		{name: "fibonacci negative", body: `{"fibonacci": -1}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci fraction", body: `{"fibonacci": 5.5}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci fraction string", body: `{"fibonacci": "5.5"}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci bool", body: `{"fibonacci": true}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci word", body: `{"fibonacci": "ten"}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci empty string", body: `{"fibonacci": ""}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci array", body: `{"fibonacci": [5]}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci object", body: `{"fibonacci": {}}`, wantMsg: "fibonacci must be a non-negative integer"},
		{name: "fibonacci too large", body: `{"fibonacci": 10001}`, wantMsg: "fibonacci value too large"},
		{name: "fibonacci huge", body: `{"fibonacci": 1e300}`, wantMsg: "fibonacci value too large"},

		{name: "prime not array", body: `{"prime": 7}`, wantMsg: "prime must be an array"},
		{name: "prime object", body: `{"prime": {"0": 7}}`, wantMsg: "prime must be an array"},
		{name: "prime empty", body: `{"prime": []}`, wantMsg: "prime array cannot be empty"},
		{name: "prime negative", body: `{"prime": [2, -3]}`, wantMsg: "prime must be an array of non-negative integers"},
		{name: "prime bool", body: `{"prime": [true]}`, wantMsg: "prime must be an array of non-negative integers"},
		{name: "prime null element", body: `{"prime": [2, null]}`, wantMsg: "prime must be an array of non-negative integers"},
		{name: "prime fraction", body: `{"prime": [2.5]}`, wantMsg: "prime must be an array of non-negative integers"},
		{name: "prime nested", body: `{"prime": [[2]]}`, wantMsg: "prime must be an array of non-negative integers"},
		{name: "prime beyond double range", body: `{"prime": [1` + strings.Repeat("0", 400) + `]}`, wantMsg: "prime must be an array of non-negative integers"},
		{name: "lcm not array", body: `{"lcm": "12,18"}`, wantMsg: "lcm must be an array"},
		{name: "lcm empty", body: `{"lcm": []}`, wantMsg: "lcm array cannot be empty"},
		{name: "lcm negative", body: `{"lcm": [-4, 6]}`, wantMsg: "lcm must be an array of non-negative integers"},
		{name: "hcf not array", body: `{"hcf": false}`, wantMsg: "hcf must be an array"},
		{name: "hcf empty", body: `{"hcf": []}`, wantMsg: "hcf array cannot be empty"},
		{name: "hcf word", body: `{"hcf": ["six"]}`, wantMsg: "hcf must be an array of non-negative integers"},

		{name: "ai number", body: `{"AI": 42}`, wantMsg: "AI must be a string (question)"},
		{name: "ai array", body: `{"AI": ["q"]}`, wantMsg: "AI must be a string (question)"},
		{name: "ai empty", body: `{"AI": ""}`, wantMsg: "AI question cannot be empty"},
		{name: "ai whitespace", body: `{"AI": " \t\n "}`, wantMsg: "AI question cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := request.Validate(decode(t, tt.body))
			require.Error(t, err)
			assert.Nil(t, op)

			var verr *request.ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate_ArrayLength(t *testing.T) {
	build := func(key string, n int) string {
		elems := make([]string, n)
		for i := range elems {
			elems[i] = fmt.Sprint(i + 1)
		}
		return fmt.Sprintf(`{%q: [%s]}`, key, strings.Join(elems, ","))
	}

	for _, key := range []string{request.KeyPrime, request.KeyLCM, request.KeyHCF} {
		t.Run(key, func(t *testing.T) {
			op, err := request.Validate(decode(t, build(key, request.MaxItems)))
			require.NoError(t, err)
			assert.Equal(t, key, op.Key())

			_, err = request.Validate(decode(t, build(key, request.MaxItems+1)))
			require.Error(t, err)
			assert.Equal(t, key+" array too long", err.Error())
		})
	}
}

func TestValidate_QuestionLength(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		q := strings.Repeat("a", request.MaxQuestionLen)
		op, err := request.Validate(map[string]any{request.KeyAI: q})
		require.NoError(t, err)
		assert.Equal(t, request.AIQuery{Question: q}, op)
	})

	t.Run("over limit", func(t *testing.T) {
		q := strings.Repeat("a", request.MaxQuestionLen+1)
		_, err := request.Validate(map[string]any{request.KeyAI: q})
		require.Error(t, err)
		assert.Equal(t, "AI question too long", err.Error())
	})

	t.Run("padding does not count", func(t *testing.T) {
		q := "   " + strings.Repeat("a", request.MaxQuestionLen) + "   "
		_, err := request.Validate(map[string]any{request.KeyAI: q})
		require.NoError(t, err)
	})

	t.Run("byte order mark is trimmed", func(t *testing.T) {
		_, err := request.Validate(map[string]any{request.KeyAI: "\ufeff"})
		require.Error(t, err)
		assert.Equal(t, "AI question cannot be empty", err.Error())
	})

	t.Run("unicode white space is trimmed", func(t *testing.T) {
		op, err := request.Validate(map[string]any{request.KeyAI: "\u00a0\u2028 hi \u3000\ufeff"})
		require.NoError(t, err)
		assert.Equal(t, request.AIQuery{Question: "hi"}, op)
	})

	t.Run("next line is kept", func(t *testing.T) {
		op, err := request.Validate(map[string]any{request.KeyAI: "\u0085"})
		require.NoError(t, err)
		assert.Equal(t, request.AIQuery{Question: "\u0085"}, op)
	})

	t.Run("astral runes count twice", func(t *testing.T) {
		// U+1F600 encodes as a surrogate pair.
		q := strings.Repeat("\U0001F600", request.MaxQuestionLen/2+1)
		_, err := request.Validate(map[string]any{request.KeyAI: q})
		require.Error(t, err)
		assert.Equal(t, "AI question too long", err.Error())
	})
}

func TestOperationKeys(t *testing.T) {
	tests := []struct {
		op   request.Operation
		want string
	}{
		{op: request.Fibonacci{}, want: "fibonacci"},
		{op: request.Prime{}, want: "prime"},
		{op: request.LCM{}, want: "lcm"},
		{op: request.HCF{}, want: "hcf"},
		{op: request.AIQuery{}, want: "AI"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Key())
	}
	assert.Equal(t, []string{"fibonacci", "prime", "lcm", "hcf", "AI"}, request.Keys)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "object", body: `{"fibonacci": 3}`},
		{name: "surrounding whitespace", body: "  \n{\"fibonacci\": 3}\n  "},
		{name: "scalar", body: `42`},
		{name: "empty", body: ``, wantErr: true},
		{name: "whitespace only", body: `   `, wantErr: true},
		{name: "truncated", body: `{"fibonacci": `, wantErr: true},
		{name: "trailing comma", body: `{"fibonacci": 3,}`, wantErr: true},
		{name: "single quotes", body: `{'fibonacci': 3}`, wantErr: true},
		{name: "two values", body: `{"fibonacci": 3}{"prime": [2]}`, wantErr: true},
		{name: "trailing garbage", body: `{"fibonacci": 3} x`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := request.Decode([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, request.ErrMalformedBody)
				return
			}
			assert.NoError(t, err)
		})
	}
}
