// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/render"
	x509certs "github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

func readyHost() *ssllabs.Host {
	return &ssllabs.Host{
		Host:   "example.com",
		Status: ssllabs.StatusReady,
		Endpoints: []ssllabs.Endpoint{
			{IPAddress: "192.0.2.1", Grade: "A+", StatusMessage: "Ready", ServerName: "edge-1"},
			{IPAddress: "2001:db8::1", Grade: "T", GradeTrustIgnored: "A", HasWarnings: true},
		},
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Host Table",
			testFunc: func(t *testing.T) {
				out := render.HostTable(readyHost())
				assert.Contains(t, out, "192.0.2.1")
				assert.Contains(t, out, "A+")
				assert.Contains(t, out, "T (A if trusted)")
				assert.Contains(t, out, "warnings")
				assert.Contains(t, out, "|")
			},
		},
		{
			name: "Host Without Endpoints",
			testFunc: func(t *testing.T) {
				out := render.HostTable(&ssllabs.Host{Host: "gone.example", Status: ssllabs.StatusError, StatusMessage: "Unable to resolve domain name"})
				assert.Contains(t, out, "gone.example")
				assert.Contains(t, out, "Unable to resolve domain name")
			},
		},
		{
			name: "Outcomes Table",
			testFunc: func(t *testing.T) {
				out := render.OutcomesTable([]ssllabs.ScanOutcome{
					{Host: "example.com", Result: readyHost()},
					{Host: "bad.example", Err: errors.New("ssllabs: analyze: invocation error")},
				})
				assert.Contains(t, out, "example.com")
				assert.Contains(t, out, "FAILED")
				assert.Contains(t, out, "invocation error")
				assert.Equal(t, "No hosts scanned", render.OutcomesTable(nil))
			},
		},
		{
			name: "Host Tree",
			testFunc: func(t *testing.T) {
				out := render.HostTree(readyHost())
				lines := strings.Split(strings.TrimSpace(out), "\n")
				require.Len(t, lines, 3)
				assert.Equal(t, "example.com [READY]", lines[0])
				assert.Equal(t, "├── 192.0.2.1 (A+) edge-1", lines[1])
				assert.Equal(t, "└── 2001:db8::1 (T (A if trusted))", lines[2])
			},
		},
		{
			name: "Info Text",
			testFunc: func(t *testing.T) {
				coolOff := int64(1000)
				out := render.InfoText(&ssllabs.Info{
					EngineVersion: "2.3.1", CriteriaVersion: "2009q",
					CurrentAssessments: ssllabs.Int(3), MaxAssessments: ssllabs.Int(25), NewAssessmentCoolOff: &coolOff,
					Messages: []string{"maintenance tonight"},
				})
				assert.Contains(t, out, "2.3.1")
				assert.Contains(t, out, "3 of 25")
				assert.Contains(t, out, "1s")
				assert.Contains(t, out, "maintenance tonight")
			},
		},
		{
			name: "Info Text Without Counters",
			testFunc: func(t *testing.T) {
				out := render.InfoText(&ssllabs.Info{EngineVersion: "2.3.1"})
				assert.Contains(t, out, "Assessments:      unknown of unknown")
				assert.Contains(t, out, "Cool-off:         unknown")
			},
		},
		{
			name: "Status Codes Sorted",
			testFunc: func(t *testing.T) {
				out := render.StatusCodesTable(&ssllabs.StatusCodes{StatusDetails: map[string]string{
					"ZETA": "last", "ALPHA": "first",
				}})
				assert.Less(t, strings.Index(out, "ALPHA"), strings.Index(out, "ZETA"))
			},
		},
		{
			name: "Root Certs Table",
			testFunc: func(t *testing.T) {
				out := render.RootCertsTable([]x509certs.RootCert{{
					Name: "Example Root", KeyType: "RSA", KeyLength: 4096,
					NotBefore: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				}})
				assert.Contains(t, out, "Example Root")
				assert.Contains(t, out, "RSA 4096")
				assert.Contains(t, out, "2020-01-01")
				assert.Contains(t, out, "unknown")
				assert.Equal(t, "No root certificates", render.RootCertsTable(nil))
			},
		},
		{
			name: "JSON",
			testFunc: func(t *testing.T) {
				out, err := render.JSON(map[string]int{"a": 1})
				require.NoError(t, err)
				assert.Equal(t, "{\n  \"a\": 1\n}", out)

				_, err = render.JSON(func() {})
				assert.Error(t, err)
			},
		},
		{
			name: "Host Document Prefers Raw",
			testFunc: func(t *testing.T) {
				host := readyHost()
				assert.Same(t, host, render.HostDocument(host))

				host.Raw = json.RawMessage(`{"host":"example.com","extra":true}`)
				out, err := render.JSON(render.HostDocument(host))
				require.NoError(t, err)
				assert.Contains(t, out, `"extra": true`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
