// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/render"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

// instructionsTemplate is the embedded template rendered into the server instructions.
const instructionsTemplate = "ssllabs_instructions.md"

// instructionData holds the data passed to the instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string
}

// toolInfo describes one tool for the instructions template.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the instructions template with the registered tools.
//
// Parameters:
//   - embed: Filesystem holding the template
//   - tools: Tool definitions listed in the instructions
//
// Returns:
//   - string: The rendered instruction text sent to MCP clients on initialization
//   - error: If the template cannot be read, parsed, or executed
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinition) (string, error) {
	templateBytes, err := embed.ReadFile(instructionsTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{ToolRoles: make(map[string]string)}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
		if tool.Role != "" {
			data.ToolRoles[tool.Role] = tool.Tool.Name
		}
	}

	tmpl, err := template.New("instructions").Option("missingkey=zero").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}

// toolHandlers serves every tool through one shared client, so all tools
// observe the same capacity counters.
type toolHandlers struct {
	client *ssllabs.Client
}

// assessmentArgs returns the tool arguments minus the output selector,
// leaving only assessment options for the normalizer.
func assessmentArgs(request mcp.CallToolRequest) map[string]any {
	args := make(map[string]any)
	for k, v := range request.GetArguments() {
		if k == "format" {
			continue
		}
		args[k] = v
	}
	return args
}

func textResult(out string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render result: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

func hostResult(host *ssllabs.Host, format string) (*mcp.CallToolResult, error) {
	switch format {
	case formatTable:
		return mcp.NewToolResultText(render.HostTable(host)), nil
	case formatTree:
		return mcp.NewToolResultText(render.HostTree(host)), nil
	default:
		return textResult(render.JSON(render.HostDocument(host)))
	}
}

func (h *toolHandlers) handleInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := h.client.Info(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("info request failed: %v", err)), nil
	}

	if request.GetString("format", "text") == formatJSON {
		return textResult(render.JSON(info))
	}
	return mcp.NewToolResultText(render.InfoText(info)), nil
}

func (h *toolHandlers) handleAnalyze(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	host, err := h.client.AnalyzeMap(ctx, assessmentArgs(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analyze failed: %v", err)), nil
	}
	return hostResult(host, request.GetString("format", formatJSON))
}

func (h *toolHandlers) handleScan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	host, err := h.client.ScanMap(ctx, assessmentArgs(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}
	return hostResult(host, request.GetString("format", formatJSON))
}

func (h *toolHandlers) handleEndpointData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := ssllabs.EndpointOptions{
		Host: request.GetString(ssllabs.OptHost, ""),
		S:    request.GetString("s", ""),
	}
	normalized := ssllabs.Normalize(request.GetArguments())
	if fromCache, ok := normalized[ssllabs.OptFromCache].(bool); ok {
		opts.FromCache = &fromCache
	}

	endpoint, err := h.client.GetEndpointData(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("endpoint data request failed: %v", err)), nil
	}
	return textResult(render.JSON(endpoint))
}

func (h *toolHandlers) handleStatusCodes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	codes, err := h.client.GetStatusCodes(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("status codes request failed: %v", err)), nil
	}

	if request.GetString("format", formatTable) == formatJSON {
		return textResult(render.JSON(codes))
	}
	return mcp.NewToolResultText(render.StatusCodesTable(codes)), nil
}

func (h *toolHandlers) handleRootCerts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var selector any = 1
	if v, ok := request.GetArguments()["trustStore"]; ok {
		selector = v
	}
	trustStore, err := ssllabs.ParseTrustStore(selector)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trust store: %v", err)), nil
	}

	if request.GetBool("raw", false) {
		text, err := h.client.GetRootCertsRaw(ctx, trustStore)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("root certificates request failed: %v", err)), nil
		}
		return mcp.NewToolResultText(text), nil
	}

	roots, err := h.client.GetRootCerts(ctx, trustStore)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("root certificates request failed: %v", err)), nil
	}

	if request.GetString("format", formatTable) == formatJSON {
		return textResult(render.JSON(roots))
	}
	return mcp.NewToolResultText(render.RootCertsTable(roots)), nil
}
