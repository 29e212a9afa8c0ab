// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package render formats assessment results for terminals and for MCP
// tool output: markdown tables, an ASCII tree and indented JSON.
package render
