// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"context"

	x509certs "github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/x509/certs"
)

// analyzeDefaults are merged under every analyze call.
var analyzeDefaults = map[string]any{
	OptPublish:        false,
	OptFromCache:      false,
	OptIgnoreMismatch: false,
}

// Info fetches the service status and merges its capacity counters into
// the shared cell. Counters missing from the body leave the values taken
// from the response headers in place.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	var info Info
	if _, err := c.getJSON(ctx, OperationInfo, nil, &info); err != nil {
		return nil, err
	}
	c.capacity.merge(&info)
	return &info, nil
}

// Analyze validates opts and issues a single analyze call. It does not
// poll; see [Client.Poll] and [Client.Scan].
//
// Parameters:
//   - ctx: Context for cancellation
//   - opts: Assessment options; publish, fromCache and ignoreMismatch default to off
//
// Returns:
//   - *Host: The assessment in whatever state the service reports
//   - error: [ValidationError] before any request, or a [ClassifiedError]
func (c *Client) Analyze(ctx context.Context, opts Options) (*Host, error) {
	return c.AnalyzeMap(ctx, opts.Map())
}

// AnalyzeMap is [Client.Analyze] for loosely typed input, which is
// normalized first.
func (c *Client) AnalyzeMap(ctx context.Context, raw map[string]any) (*Host, error) {
	params := withDefaults(Normalize(raw), analyzeDefaults)
	if err := ValidateOptions(params); err != nil {
		return nil, err
	}
	return c.analyze(ctx, params)
}

func (c *Client) analyze(ctx context.Context, params map[string]any) (*Host, error) {
	var host Host
	body, err := c.getJSON(ctx, OperationAnalyze, params, &host)
	if err != nil {
		return nil, err
	}
	host.Raw = body
	return &host, nil
}

// GetEndpointData fetches the details of one endpoint. Host is checked
// before the endpoint IP; fromCache defaults to off.
func (c *Client) GetEndpointData(ctx context.Context, opts EndpointOptions) (*Endpoint, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var endpoint Endpoint
	if _, err := c.getJSON(ctx, OperationEndpointData, opts.params(), &endpoint); err != nil {
		return nil, err
	}
	return &endpoint, nil
}

// GetStatusCodes fetches the known status detail codes.
func (c *Client) GetStatusCodes(ctx context.Context) (*StatusCodes, error) {
	var codes StatusCodes
	if _, err := c.getJSON(ctx, OperationStatusCodes, nil, &codes); err != nil {
		return nil, err
	}
	return &codes, nil
}

// GetRootCertsRaw fetches the raw root certificate bundle of a trust store
// (1 Mozilla, 2 Apple MacOS, 3 Android, 4 Java, 5 Windows).
func (c *Client) GetRootCertsRaw(ctx context.Context, trustStore int) (string, error) {
	store, err := ParseTrustStore(trustStore)
	if err != nil {
		return "", err
	}
	return c.getText(ctx, OperationRootCertsRaw, map[string]any{"trustStore": store})
}

// GetRootCerts fetches a trust store bundle and parses it into records.
// A bundle that cannot be parsed is reported as a [ClassifiedError] of
// kind [KindDecode].
func (c *Client) GetRootCerts(ctx context.Context, trustStore int) ([]x509certs.RootCert, error) {
	raw, err := c.GetRootCertsRaw(ctx, trustStore)
	if err != nil {
		return nil, err
	}

	roots, err := x509certs.New().ParseRootBundle(raw)
	if err != nil {
		return nil, &ClassifiedError{Kind: KindDecode, Operation: OperationRootCerts, Err: err}
	}
	return roots, nil
}
