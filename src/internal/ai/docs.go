// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ai answers free-form questions with a single word.
//
// The [Asker] interface is the seam used by the dispatcher. [Gemini] is the
// production implementation backed by google.golang.org/genai; it asks the
// model for a one-word reply and runs the raw text through [Sanitize].
//
// Example:
//
//	g := ai.NewGemini(ai.Config{APIKey: key, Model: "gemini-2.5-flash"})
//	word, err := g.Ask(ctx, "What is the capital city of Maharashtra?")
//	if err != nil {
//		// errors.Is(err, ai.ErrAI) holds for every failure
//	}
//	fmt.Println(word) // Mumbai
package ai
