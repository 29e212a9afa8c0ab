// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the SSL Labs assessment client as [MCP] tools.
//
// Every tool shares one [ssllabs.Client], so capacity observed by one call
// gates the assessments started by the next. Tool arguments go through the
// same normalizer and validator as the library entry points; failures are
// returned as tool error results rather than protocol errors.
//
// The server is assembled with [ServerBuilder] and served over stdio by [Run].
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
