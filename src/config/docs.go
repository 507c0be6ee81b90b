// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the bfhl service configuration.
//
// Values are resolved in three layers, later layers winning:
//
//  1. built-in defaults
//  2. an optional JSON or YAML file (path from the --config flag or the
//     BFHL_CONFIG_FILE environment variable; format chosen by extension)
//  3. the environment variables OFFICIAL_EMAIL, GEMINI_API_KEY and PORT
//
// A minimal YAML file:
//
//	officialEmail: student@example.edu
//	server:
//	  addr: ":8080"
//	  bodyLimitBytes: 51200
//	ai:
//	  model: gemini-2.5-flash
//	  timeoutSeconds: 20
package config
