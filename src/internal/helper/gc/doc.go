// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library to provide a consistent interface for
// buffer management across the application, particularly for encoding response
// envelopes, which can grow large for long Fibonacci sequences, and for
// structured log lines.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
