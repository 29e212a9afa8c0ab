// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers for presenting the running binary consistently
// across operating systems.
//
// The CLI uses it to build cobra usage strings from the real binary name:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.GetExecutableName() + " [command]",
//	}
//
// Behavior:
//
//   - Linux/macOS: "/usr/local/bin/ssllabs-scan" → "ssllabs-scan"
//   - Windows: "C:\bin\ssllabs-scan.exe" → "ssllabs-scan"
//   - Fallback: Empty args → "ssllabs-scan"
package posix
