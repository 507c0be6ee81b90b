// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import "bytes"

// foreignBuffer satisfies Buffer without coming from any pool.
type foreignBuffer struct{ *bytes.Buffer }

func (f foreignBuffer) Set(p []byte) {
	f.Buffer.Reset()
	f.Buffer.Write(p)
}

func (f foreignBuffer) SetString(s string) {
	f.Buffer.Reset()
	f.Buffer.WriteString(s)
}

// failingReader fails every read with err.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
