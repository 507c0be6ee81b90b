// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// UnmarshalFromMap converts decoded JSON-RPC params to a typed value via a
// JSON round-trip.
//
// It binds the generic arguments of a tool call into a struct. Fields of
// type [json.RawMessage] receive the exact JSON of their argument, which
// lets the caller decode it again with its own rules.
//
// Parameters:
//   - src: Source map or value to convert
//   - dest: Pointer to the destination value
//
// Returns:
//   - error: Error if marshaling or unmarshaling fails
func UnmarshalFromMap(src any, dest any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
