// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package httpserver exposes the dispatcher over HTTP using Fiber.
//
// Routes:
//
//	POST /bfhl    run one operation
//	GET  /health  liveness, always 200
//	*             404 failure envelope
//
// Every response, including framework errors and recovered panics, is a
// JSON envelope. Each request carries an X-Request-ID header, generated when
// the client did not send one.
package httpserver
