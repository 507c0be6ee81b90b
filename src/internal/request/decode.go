// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// ErrMalformedBody is returned by [Decode] when the payload is not exactly
// one well-formed JSON value.
var ErrMalformedBody = errors.New("Invalid JSON body")

// Decode parses a raw request body into a generic JSON value suitable for
// [Validate]. Numbers are kept as [json.Number] so integer checks are not
// distorted by an early float conversion.
func Decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, ErrMalformedBody
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, ErrMalformedBody
	}
	return body, nil
}
