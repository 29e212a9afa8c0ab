// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

// serverName identifies the server to MCP clients.
const serverName = "SSL Labs Assessment Scanner"

// ErrMissingClient is returned by [ServerBuilder.Build] when no assessment client was configured.
var ErrMissingClient = errors.New("mcpserver: assessment client is required")

// ToolDefinition describes one MCP tool and the handler serving it.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
	// Role is the stable name the instructions template refers to the tool by.
	Role string
}

// ServerDependencies holds everything the server needs to be built.
type ServerDependencies struct {
	Client       *ssllabs.Client
	Version      string
	Embed        templates.EmbedFS
	Tools        []ToolDefinition
	Instructions string
}

// ServerBuilder helps construct the [MCP] server with proper dependencies.
// Configure it with the With* methods, then call Build.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithClient(client).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithClient sets the assessment client every tool calls through.
func (b *ServerBuilder) WithClient(client *ssllabs.Client) *ServerBuilder {
	b.deps.Client = client
	return b
}

// WithVersion sets the version reported to MCP clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithEmbed sets the filesystem the instructions template is read from.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithTools appends tool definitions.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools registers the assessment tools bound to the configured client.
// It must be called after WithClient.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools(&toolHandlers{client: b.deps.Client})...)
}

// WithInstructions sets pre-rendered server instructions.
// When unset, Build renders them from the embedded template.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// Build creates the [server.MCPServer] with all configured tools.
//
// Returns:
//   - *server.MCPServer: The server, ready to be served over any transport
//   - error: [ErrMissingClient], or a failure rendering the instructions
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Client == nil {
		return nil, ErrMissingClient
	}

	instructions := b.deps.Instructions
	if instructions == "" {
		embed := b.deps.Embed
		if embed == nil {
			embed = templates.MagicEmbed
		}
		rendered, err := loadInstructions(embed, b.deps.Tools)
		if err != nil {
			return nil, err
		}
		instructions = rendered
	}

	s := server.NewMCPServer(
		serverName,
		b.deps.Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
	)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	return s, nil
}
