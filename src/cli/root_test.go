// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/config"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/logger"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

const testBundle = `# Name: Example Root
# Subject: CN=Example Root
# Key Type: RSA
# Key Length: 4096
# Not Before: 2020-01-01T00:00:00Z
# Not After: 2040-01-01T00:00:00Z
-----BEGIN CERTIFICATE-----
AAAA
-----END CERTIFICATE-----
`

// fakeAPI answers every operation the CLI uses.
func fakeAPI(t *testing.T) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch path.Base(r.URL.Path) {
		case ssllabs.OperationInfo:
			_, _ = io.WriteString(w, `{"engineVersion":"2.3.1","criteriaVersion":"2009q","currentAssessments":1,"maxAssessments":25,"newAssessmentCoolOff":1000}`)
		case ssllabs.OperationAnalyze:
			host := q.Get(ssllabs.OptHost)
			if host == "bad.example" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"errors":[{"field":"host","message":"Unable to resolve domain name"}]}`)
				return
			}
			_, _ = fmt.Fprintf(w, `{"host":%q,"status":"READY","endpoints":[{"ipAddress":"192.0.2.1","grade":"A","statusMessage":"Ready"}],"echo":%q}`,
				host, r.URL.RawQuery)
		case ssllabs.OperationEndpointData:
			_, _ = fmt.Fprintf(w, `{"ipAddress":%q,"grade":"A+"}`, q.Get("s"))
		case ssllabs.OperationStatusCodes:
			_, _ = io.WriteString(w, `{"statusDetails":{"TESTING_HEARTBLEED":"Testing Heartbleed"}}`)
		case ssllabs.OperationRootCertsRaw:
			_, _ = io.WriteString(w, testBundle)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("SSLLABS_API_URL", srv.URL+"/api/v2/")
	t.Setenv("SSLLABS_POLL_NOT_STARTED_DELAY_MS", "1")
	t.Setenv("SSLLABS_POLL_IN_PROGRESS_DELAY_MS", "1")
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvDebug, "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand("test", logger.Discard())
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Info",
			testFunc: func(t *testing.T) {
				out, err := run(t, "info")
				require.NoError(t, err)
				assert.Contains(t, out, "2.3.1")
				assert.Contains(t, out, "1 of 25")
			},
		},
		{
			name: "Info JSON",
			testFunc: func(t *testing.T) {
				out, err := run(t, "info", "--json")
				require.NoError(t, err)

				var info ssllabs.Info
				require.NoError(t, json.Unmarshal([]byte(out), &info))
				require.NotNil(t, info.MaxAssessments)
				assert.Equal(t, 25, *info.MaxAssessments)
			},
		},
		{
			name: "Analyze Sends Only Changed Flags",
			testFunc: func(t *testing.T) {
				out, err := run(t, "analyze", "example.com", "--start-new", "--all", "ON", "--json")
				require.NoError(t, err)

				var doc struct {
					Echo string `json:"echo"`
				}
				require.NoError(t, json.Unmarshal([]byte(out), &doc))
				assert.Equal(t, "all=on&fromCache=off&host=example.com&ignoreMismatch=off&publish=off&startNew=on", doc.Echo)
			},
		},
		{
			name: "Analyze Validation",
			testFunc: func(t *testing.T) {
				_, err := run(t, "analyze", "example.com", "--max-age", "5")
				assert.ErrorIs(t, err, ssllabs.ErrValidation)
			},
		},
		{
			name: "Scan Tree",
			testFunc: func(t *testing.T) {
				out, err := run(t, "scan", "example.com")
				require.NoError(t, err)
				assert.Contains(t, out, "example.com [READY]")
				assert.Contains(t, out, "└── 192.0.2.1 (A)")
			},
		},
		{
			name: "Scan Table With Failure",
			testFunc: func(t *testing.T) {
				out, err := run(t, "scan", "a.example", "bad.example", "--table", "--parallel", "2")
				assert.ErrorIs(t, err, ErrScanFailed)
				assert.ErrorIs(t, err, ssllabs.ErrInvocation)
				assert.Contains(t, out, "a.example")
				assert.Contains(t, out, "FAILED")
			},
		},
		{
			name: "Scan JSON",
			testFunc: func(t *testing.T) {
				out, err := run(t, "scan", "a.example", "b.example", "--json")
				require.NoError(t, err)

				var reports []struct {
					Host   string          `json:"host"`
					Result json.RawMessage `json:"result"`
					Error  string          `json:"error"`
				}
				require.NoError(t, json.Unmarshal([]byte(out), &reports))
				require.Len(t, reports, 2)
				assert.Equal(t, "a.example", reports[0].Host)
				assert.Equal(t, "b.example", reports[1].Host)
				assert.Contains(t, string(reports[1].Result), "fromCache=on")
				assert.Empty(t, reports[0].Error)
			},
		},
		{
			name: "Endpoint",
			testFunc: func(t *testing.T) {
				out, err := run(t, "endpoint", "example.com", "192.0.2.9")
				require.NoError(t, err)
				assert.Contains(t, out, "192.0.2.9")
				assert.Contains(t, out, "A+")
			},
		},
		{
			name: "Status Codes",
			testFunc: func(t *testing.T) {
				out, err := run(t, "status-codes")
				require.NoError(t, err)
				assert.Contains(t, out, "TESTING_HEARTBLEED")
			},
		},
		{
			name: "Root Certs",
			testFunc: func(t *testing.T) {
				out, err := run(t, "root-certs", "--trust-store", "2")
				require.NoError(t, err)
				assert.Contains(t, out, "Example Root")
				assert.Contains(t, out, "RSA 4096")

				out, err = run(t, "root-certs", "--raw")
				require.NoError(t, err)
				assert.Equal(t, testBundle, out)
			},
		},
		{
			name: "Root Certs Bad Trust Store",
			testFunc: func(t *testing.T) {
				for _, store := range []string{"a", "0", "6"} {
					_, err := run(t, "root-certs", "--trust-store", store)
					assert.ErrorIs(t, err, ssllabs.ErrValidation, store)
				}
			},
		},
		{
			name: "Config File",
			testFunc: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte("api:\n  url: \"::bad\"\n"), 0o600))
				t.Setenv("SSLLABS_API_URL", "")
				require.NoError(t, os.Unsetenv("SSLLABS_API_URL"))

				_, err := run(t, "--config", path, "info")
				assert.ErrorIs(t, err, ssllabs.ErrInvalidConfig)
			},
		},
		{
			name: "Missing Config File",
			testFunc: func(t *testing.T) {
				_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "info")
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeAPI(t)
			tt.testFunc(t)
		})
	}
}

func TestMetricsServer(t *testing.T) {
	srv, err := startMetricsServer("127.0.0.1:0")
	require.NoError(t, err)
	defer srv.Close()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ssllabs_client_capacity_deferrals_total")

	resp, err = http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))
}

func TestScanWithMetricsAddr(t *testing.T) {
	fakeAPI(t)

	out, err := run(t, "scan", "example.com", "--metrics-addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, "example.com [READY]")
}
