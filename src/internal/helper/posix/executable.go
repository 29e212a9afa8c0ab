// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultExecutableName is returned when the process arguments carry no usable name.
const DefaultExecutableName = "ssllabs-scan"

// GetExecutableName returns the name of the running binary without directory
// or .exe suffix, falling back to [DefaultExecutableName].
func GetExecutableName() string {
	return ExecutableName(os.Args, DefaultExecutableName)
}

// ExecutableName extracts a clean binary name from an argument vector.
//
// Both '/' and '\' are treated as separators regardless of the host OS, so a
// Windows path seen on a Unix system still yields the bare name.
//
// Parameters:
//   - args: Argument vector, usually os.Args
//   - fallback: Name returned when args is empty or args[0] has no base name
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func ExecutableName(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}

	parts := strings.FieldsFunc(args[0], func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return fallback
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." || name == ".." {
		return fallback
	}

	return name
}
