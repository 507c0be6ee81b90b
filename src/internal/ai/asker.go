// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ai

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrAI is wrapped by every error returned from an [Asker] implementation
	// in this package.
	ErrAI = errors.New("AI Error")

	// ErrNotConfigured is returned when no API key was provided.
	ErrNotConfigured = errors.New("AI service not configured: GEMINI_API_KEY is not set")
)

// DefaultFallbackWord is returned when the model reply sanitizes to nothing.
const DefaultFallbackWord = "Unknown"

// Asker answers a question with one word.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// AskerFunc adapts an ordinary function to the [Asker] interface.
type AskerFunc func(ctx context.Context, question string) (string, error)

// Ask calls f(ctx, question).
func (f AskerFunc) Ask(ctx context.Context, question string) (string, error) {
	return f(ctx, question)
}

// Sanitize reduces a model reply to a single ASCII alphanumeric word.
//
// The text is NFKC normalized so full-width and compatibility forms fold to
// their ASCII equivalents, then the first whitespace separated token is kept
// and every character outside [A-Za-z0-9] is removed. When nothing survives,
// fallback is returned.
func Sanitize(text, fallback string) string {
	fields := strings.Fields(norm.NFKC.String(text))
	if len(fields) == 0 {
		return fallback
	}

	word := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, fields[0])

	if word == "" {
		return fallback
	}
	return word
}
