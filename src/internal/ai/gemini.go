// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	systemInstruction = "You are a concise assistant. Respond with exactly one word. No punctuation, no sentences."
	promptSuffix      = " (One word only)"
)

// Config holds the settings for [Gemini].
type Config struct {
	// APIKey authenticates against the Gemini API. Empty disables AI queries.
	APIKey string
	// Model names the Gemini model, [DefaultModel] when empty.
	Model string
	// BaseURL overrides the API endpoint; empty uses the public one.
	BaseURL string
	// FallbackWord replaces replies that sanitize to nothing,
	// [DefaultFallbackWord] when empty.
	FallbackWord string
	// Timeout bounds a single call; zero means only the caller's
	// context applies.
	Timeout time.Duration
}

// Gemini is an [Asker] backed by the Gemini API.
//
// The underlying client is created on first use and shared afterwards;
// Gemini is safe for concurrent use.
type Gemini struct {
	cfg Config

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewGemini returns a Gemini adapter. No network activity happens until
// the first [Gemini.Ask].
func NewGemini(cfg Config) *Gemini {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.FallbackWord == "" {
		cfg.FallbackWord = DefaultFallbackWord
	}
	return &Gemini{cfg: cfg}
}

// Configured reports whether an API key is present.
func (g *Gemini) Configured() bool { return g.cfg.APIKey != "" }

// Ask sends question to the model and returns its sanitized one-word reply.
//
// Returns:
//   - string: The answer, never empty on success
//   - error: Wraps [ErrAI]; also wraps [ErrNotConfigured] without an API key,
//     or the provider error (typically [genai.APIError]) when the call failed
func (g *Gemini) Ask(ctx context.Context, question string) (string, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := client.Models.GenerateContent(ctx, g.cfg.Model,
		genai.Text(question+promptSuffix),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: AI API error: %w", ErrAI, err)
	}

	return Sanitize(resp.Text(), g.cfg.FallbackWord), nil
}

func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	if !g.Configured() {
		return nil, fmt.Errorf("%w: %w", ErrAI, ErrNotConfigured)
	}

	g.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:  g.cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
		if g.cfg.BaseURL != "" {
			cc.HTTPOptions.BaseURL = g.cfg.BaseURL
		}
		// The client outlives the request that created it.
		g.client, g.clientErr = genai.NewClient(context.WithoutCancel(ctx), cc)
	})
	if g.clientErr != nil {
		return nil, fmt.Errorf("%w: GEMINI client: %w", ErrAI, g.clientErr)
	}
	return g.client, nil
}
