// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509certs "github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

// noGrade fills the grade column of endpoints that were not graded.
const noGrade = "-"

func newMarkdownTable(buf *strings.Builder, headers ...string) *tablewriter.Table {
	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	return table
}

// OutcomesTable renders scan outcomes as a markdown table with one row per
// endpoint. Failed scans get a single row carrying the error.
//
// Parameters:
//   - outcomes: Results of [ssllabs.Client.ScanMany], in input order
//
// Returns:
//   - string: Markdown table
func OutcomesTable(outcomes []ssllabs.ScanOutcome) string {
	if len(outcomes) == 0 {
		return "No hosts scanned"
	}

	var buf strings.Builder
	table := newMarkdownTable(&buf, "Host", "Status", "IP Address", "Grade", "Details")

	var rows [][]string
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			rows = append(rows, []string{outcome.Host, "FAILED", "", noGrade, outcome.Err.Error()})
			continue
		}
		rows = append(rows, hostRows(outcome.Result)...)
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// HostTable renders one assessment as a markdown table.
func HostTable(host *ssllabs.Host) string {
	var buf strings.Builder
	table := newMarkdownTable(&buf, "Host", "Status", "IP Address", "Grade", "Details")
	table.Bulk(hostRows(host))
	table.Render()
	return buf.String()
}

func hostRows(host *ssllabs.Host) [][]string {
	if len(host.Endpoints) == 0 {
		return [][]string{{host.Host, host.Status, "", noGrade, host.StatusMessage}}
	}

	rows := make([][]string, 0, len(host.Endpoints))
	for _, ep := range host.Endpoints {
		rows = append(rows, []string{host.Host, host.Status, ep.IPAddress, gradeOf(ep), endpointDetails(ep)})
	}
	return rows
}

func gradeOf(ep ssllabs.Endpoint) string {
	if ep.Grade == "" {
		return noGrade
	}
	if ep.GradeTrustIgnored != "" && ep.GradeTrustIgnored != ep.Grade {
		return fmt.Sprintf("%s (%s if trusted)", ep.Grade, ep.GradeTrustIgnored)
	}
	return ep.Grade
}

func endpointDetails(ep ssllabs.Endpoint) string {
	var parts []string
	if ep.StatusMessage != "" && ep.StatusMessage != "Ready" {
		parts = append(parts, ep.StatusMessage)
	}
	if ep.HasWarnings {
		parts = append(parts, "warnings")
	}
	if ep.IsExceptional {
		parts = append(parts, "exceptional")
	}
	return strings.Join(parts, ", ")
}

// HostTree renders an assessment as an ASCII tree: the host on top, one
// branch per endpoint.
func HostTree(host *ssllabs.Host) string {
	var result strings.Builder
	fmt.Fprintf(&result, "%s [%s]\n", host.Host, host.Status)

	for i, ep := range host.Endpoints {
		connector := "├── "
		if i == len(host.Endpoints)-1 {
			connector = "└── "
		}

		line := fmt.Sprintf("%s (%s)", ep.IPAddress, gradeOf(ep))
		if ep.ServerName != "" {
			line += " " + ep.ServerName
		}
		result.WriteString(connector + line + "\n")
	}

	return result.String()
}

// InfoText renders the service status.
func InfoText(info *ssllabs.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Engine version:   %s\n", info.EngineVersion)
	fmt.Fprintf(&b, "Criteria version: %s\n", info.CriteriaVersion)
	fmt.Fprintf(&b, "Assessments:      %s of %s\n", counter(info.CurrentAssessments), counter(info.MaxAssessments))
	if info.NewAssessmentCoolOff != nil {
		fmt.Fprintf(&b, "Cool-off:         %s\n", time.Duration(*info.NewAssessmentCoolOff)*time.Millisecond)
	} else {
		b.WriteString("Cool-off:         unknown\n")
	}
	for _, msg := range info.Messages {
		fmt.Fprintf(&b, "Message:          %s\n", msg)
	}
	return b.String()
}

func counter(n *int) string {
	if n == nil {
		return "unknown"
	}
	return strconv.Itoa(*n)
}

// StatusCodesTable renders status detail codes sorted by code.
func StatusCodesTable(codes *ssllabs.StatusCodes) string {
	keys := make([]string, 0, len(codes.StatusDetails))
	for k := range codes.StatusDetails {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	table := newMarkdownTable(&buf, "Code", "Description")

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, codes.StatusDetails[k]})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// RootCertsTable renders parsed trust store records.
func RootCertsTable(roots []x509certs.RootCert) string {
	if len(roots) == 0 {
		return "No root certificates"
	}

	var buf strings.Builder
	table := newMarkdownTable(&buf, "#", "Name", "Key", "Not Before", "Not After")

	rows := make([][]string, 0, len(roots))
	for i, root := range roots {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			root.Name,
			fmt.Sprintf("%s %d", root.KeyType, root.KeyLength),
			formatDate(root.NotBefore),
			formatDate(root.NotAfter),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}

// HostDocument returns the service's complete assessment document when it
// was kept, falling back to the modeled fields.
func HostDocument(host *ssllabs.Host) any {
	if len(host.Raw) > 0 {
		return host.Raw
	}
	return host
}

// JSON renders v as indented JSON.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: failed to marshal JSON: %w", err)
	}
	return string(data), nil
}
