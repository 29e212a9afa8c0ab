// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

// Output formats accepted by the format argument.
const (
	formatJSON  = "json"
	formatTable = "table"
	formatTree  = "tree"
)

// assessmentParams declares the assessment arguments shared by the analyze and scan tools.
// Every value is passed through [ssllabs.Normalize], so strings such as "on" are accepted too.
func assessmentParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString(ssllabs.OptHost,
			mcp.Required(),
			mcp.Description("Hostname to assess"),
		),
		mcp.WithBoolean(ssllabs.OptStartNew,
			mcp.Description("Start a new assessment, ignoring cached results (conflicts with fromCache)"),
		),
		mcp.WithBoolean(ssllabs.OptFromCache,
			mcp.Description("Return a cached assessment when one is available"),
		),
		mcp.WithNumber(ssllabs.OptMaxAge,
			mcp.Description("Maximum cached report age in hours (requires fromCache)"),
		),
		mcp.WithString(ssllabs.OptAll,
			mcp.Description("Endpoint detail level: 'on', 'off', or 'done'"),
			mcp.Enum(ssllabs.AllOn, ssllabs.AllOff, ssllabs.AllDone),
		),
		mcp.WithBoolean(ssllabs.OptPublish,
			mcp.Description("Publish the result on the public boards (default: false)"),
		),
		mcp.WithBoolean(ssllabs.OptIgnoreMismatch,
			mcp.Description("Continue when the certificate does not match the hostname (default: false)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'json', 'table', or 'tree' (default: json)"),
			mcp.DefaultString(formatJSON),
			mcp.Enum(formatJSON, formatTable, formatTree),
		),
	}
}

// createTools returns every assessment tool bound to h.
//
// The function defines the following tools:
//   - ssllabs_info: Engine version and assessment capacity
//   - ssllabs_analyze: One analyze call, returning the current status
//   - ssllabs_scan: Waits for capacity and polls until the assessment finishes
//   - ssllabs_endpoint_data: Full report for one endpoint
//   - ssllabs_status_codes: Status detail code dictionary
//   - ssllabs_root_certs: Root certificates of a trust store
func createTools(h *toolHandlers) []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool("ssllabs_info",
				mcp.WithDescription("Report the assessment engine version and current assessment capacity"),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'text' (default: text)"),
					mcp.DefaultString("text"),
				),
			),
			Handler: h.handleInfo,
			Role:    "infoProvider",
		},
		{
			Tool: mcp.NewTool("ssllabs_analyze",
				append([]mcp.ToolOption{
					mcp.WithDescription("Issue a single analyze request and return the current assessment state without waiting"),
				}, assessmentParams()...)...,
			),
			Handler: h.handleAnalyze,
			Role:    "analyzer",
		},
		{
			Tool: mcp.NewTool("ssllabs_scan",
				append([]mcp.ToolOption{
					mcp.WithDescription("Run a TLS assessment to completion, waiting for capacity and polling until READY or ERROR"),
				}, assessmentParams()...)...,
			),
			Handler: h.handleScan,
			Role:    "scanner",
		},
		{
			Tool: mcp.NewTool("ssllabs_endpoint_data",
				mcp.WithDescription("Fetch the detailed report for a single endpoint of an assessed host"),
				mcp.WithString(ssllabs.OptHost,
					mcp.Required(),
					mcp.Description("Assessed hostname"),
				),
				mcp.WithString("s",
					mcp.Required(),
					mcp.Description("Endpoint IP address"),
				),
				mcp.WithBoolean(ssllabs.OptFromCache,
					mcp.Description("Return cached endpoint data (default: false)"),
				),
			),
			Handler: h.handleEndpointData,
			Role:    "endpointReporter",
		},
		{
			Tool: mcp.NewTool("ssllabs_status_codes",
				mcp.WithDescription("List the status detail codes and their descriptions"),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'table' (default: table)"),
					mcp.DefaultString(formatTable),
				),
			),
			Handler: h.handleStatusCodes,
			Role:    "statusDictionary",
		},
		{
			Tool: mcp.NewTool("ssllabs_root_certs",
				mcp.WithDescription("List the root certificates of a trust store"),
				mcp.WithNumber("trustStore",
					mcp.Description("Trust store: 1 Mozilla, 2 Apple MacOS, 3 Android, 4 Java, 5 Windows (default: 1)"),
					mcp.DefaultNumber(1),
					mcp.Min(ssllabs.MinTrustStore),
					mcp.Max(ssllabs.MaxTrustStore),
				),
				mcp.WithBoolean("raw",
					mcp.Description("Return the raw certificate bundle text (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'table' (default: table)"),
					mcp.DefaultString(formatTable),
				),
			),
			Handler: h.handleRootCerts,
			Role:    "rootStore",
		},
	}
}
