// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers that behave the same on every
// operating system.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use:     "bfhl",
//	    Example: fmt.Sprintf("  %s compute '{\"fibonacci\": 7}'", posix.GetExecutableName()),
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
