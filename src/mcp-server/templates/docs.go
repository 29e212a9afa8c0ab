// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
// It offers a small abstraction over the markdown templates used by the MCP server,
// currently the server instructions rendered at startup.
//
// The package provides thread-safe access to embedded files through the [EmbedFS] interface,
// with [MagicEmbed] serving as the default implementation.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/ssllabs-scanner/src/mcp-server/templates"
//
//	content, err := templates.MagicEmbed.ReadFile("ssllabs_instructions.md")
//	if err != nil {
//		return fmt.Errorf("failed to read instructions: %w", err)
//	}
package templates
