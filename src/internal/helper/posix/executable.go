// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExecutableName is returned when os.Args[0] is unavailable.
const DefaultExecutableName = "bfhl"

// GetExecutableName returns the name the binary was invoked as, without
// directory or .exe extension, for CLI usage and example strings.
//
// This gives the same result on every operating system:
//   - Linux/macOS: "bfhl" from "/usr/local/bin/bfhl"
//   - Windows: "bfhl" from "C:\bin\bfhl.exe"
//   - Fallback: [DefaultExecutableName] if os.Args[0] is empty
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultExecutableName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	if arg0 == "" {
		return DefaultExecutableName
	}

	name := filepath.Base(arg0)

	// A path using the other platform's separator survives filepath.Base.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) == 0 {
			return DefaultExecutableName
		}
		name = parts[len(parts)-1]
	}

	return strings.TrimSuffix(name, ".exe")
}
