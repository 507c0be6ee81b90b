// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package request decodes and validates bfhl request bodies.
//
// A body selects exactly one operation key (fibonacci, prime, lcm, hcf or AI).
// [Validate] enforces that rule, applies the per-key shape and range checks,
// and yields a typed [Operation] that the dispatcher consumes.
package request
