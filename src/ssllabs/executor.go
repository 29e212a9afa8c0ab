// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/helper/gc"
)

// Operation names appended to the API base.
const (
	OperationInfo         = "info"
	OperationAnalyze      = "analyze"
	OperationEndpointData = "getEndpointData"
	OperationStatusCodes  = "getStatusCodes"
	OperationRootCertsRaw = "getRootCertsRaw"
	// OperationRootCerts is local: it parses the getRootCertsRaw text.
	OperationRootCerts = "getRootCerts"
)

// maxDebugBodyLen caps how much of a body a debug line shows.
const maxDebugBodyLen = 4096

// encodeParams renders parameters as a query string. Booleans become the
// tokens on and off; nil values are skipped.
func encodeParams(params map[string]any) url.Values {
	values := make(url.Values, len(params))
	for key, value := range params {
		switch v := value.(type) {
		case nil:
		case bool:
			if v {
				values.Set(key, "on")
			} else {
				values.Set(key, "off")
			}
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values
}

// execute performs exactly one GET of operation and returns the body of a
// 200 response. Capacity headers are recorded for every response, whatever
// its status. raw only changes the Accept header; decoding is left to the
// caller.
func (c *Client) execute(ctx context.Context, operation string, params map[string]any, raw bool) ([]byte, error) {
	target := c.baseURL.ResolveReference(&url.URL{Path: operation})
	target.RawQuery = encodeParams(params).Encode()

	c.debugf("ssllabs: GET %s", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, &ClassifiedError{Kind: KindTransport, Operation: operation, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if raw {
		req.Header.Set("Accept", "text/plain, */*")
	} else {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("ssllabs: %s: %w", operation, ctxErr)
		}
		return nil, &ClassifiedError{Kind: KindTransport, Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	c.capacity.observe(resp.Header)

	body, err := gc.ReadAll(c.pool, resp.Body, maxBodySize)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("ssllabs: %s: %w", operation, ctxErr)
		}
		return nil, &ClassifiedError{Kind: KindTransport, Operation: operation, StatusCode: resp.StatusCode, Err: err}
	}

	c.debugf("ssllabs: %s -> HTTP %d: %s", operation, resp.StatusCode, debugBody(body))

	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(operation, resp.StatusCode, body)
	}
	return body, nil
}

// getJSON executes operation and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, operation string, params map[string]any, out any) ([]byte, error) {
	body, err := c.execute(ctx, operation, params, false)
	if err == nil {
		if decodeErr := json.Unmarshal(body, out); decodeErr != nil {
			err = &ClassifiedError{Kind: KindDecode, Operation: operation, StatusCode: http.StatusOK, Err: decodeErr}
		}
	}
	observeRequest(operation, err)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// getText executes operation and returns the body unparsed.
func (c *Client) getText(ctx context.Context, operation string, params map[string]any) (string, error) {
	body, err := c.execute(ctx, operation, params, true)
	observeRequest(operation, err)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func debugBody(body []byte) string {
	if len(body) <= maxDebugBodyLen {
		return string(body)
	}
	return string(body[:maxDebugBodyLen]) + "...(truncated)"
}
