// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxAge is the cache age, in hours, a scan accepts by default.
const DefaultMaxAge = 24

// scanDefaults are merged under the caller's options by every scan.
// fromCache and maxAge are dropped when startNew is set.
var scanDefaults = map[string]any{
	OptAll:       AllDone,
	OptFromCache: true,
	OptMaxAge:    DefaultMaxAge,
}

// Scan submits an assessment and waits for its terminal result.
//
// Before every submission it fetches info and consults the capacity gate.
// While the service reports no free slot the scan waits the advised
// cool-off and checks again, indefinitely; each deferral is logged and
// counted. Cancelling ctx stops both kinds of wait.
func (c *Client) Scan(ctx context.Context, opts Options) (*Host, error) {
	return c.scan(ctx, opts.Map())
}

// ScanHost scans host with the default options.
func (c *Client) ScanHost(ctx context.Context, host string) (*Host, error) {
	return c.Scan(ctx, Options{Host: host})
}

// ScanMap is [Client.Scan] for loosely typed input, which is normalized first.
func (c *Client) ScanMap(ctx context.Context, raw map[string]any) (*Host, error) {
	return c.scan(ctx, Normalize(raw))
}

// ScanParams returns the options a scan would send for params, after
// defaults. It does not validate.
func ScanParams(params map[string]any) map[string]any {
	defaults := scanDefaults
	if isTrue(params[OptStartNew]) {
		defaults = map[string]any{OptAll: AllDone}
	}
	return withDefaults(withDefaults(params, defaults), analyzeDefaults)
}

func (c *Client) scan(ctx context.Context, params map[string]any) (*Host, error) {
	params = ScanParams(params)
	if err := ValidateOptions(params); err != nil {
		return nil, err
	}

	for {
		if _, err := c.Info(ctx); err != nil {
			return nil, err
		}

		snap := c.capacity.Snapshot()
		if snap.HasCapacity() {
			return c.poll(ctx, params)
		}

		coolOff := c.coolOff(snap)
		observeDeferral()
		c.log.Printf("ssllabs: no capacity for %s (%d/%d assessments), retrying in %s",
			params[OptHost], snap.Current, snap.Max, coolOff)

		if err := c.wait(ctx, coolOff); err != nil {
			return nil, fmt.Errorf("ssllabs: waiting for capacity for %s: %w", params[OptHost], err)
		}
	}
}

// coolOff returns the advised wait, falling back to the not-started poll
// delay when the service advises none.
func (c *Client) coolOff(snap Snapshot) time.Duration {
	if snap.CoolOff > 0 {
		return snap.CoolOff
	}
	return c.notStartedDelay
}

// ScanOutcome is the result of one scan started by [Client.ScanMany].
type ScanOutcome struct {
	Host   string
	Result *Host
	Err    error
}

// ScanMany scans several hosts with at most limit scans in flight. A
// non-positive limit uses the configured maximum. Each scan is an
// independent chain: one failing never cancels the others.
//
// Returns:
//   - []ScanOutcome: One outcome per input, in input order
func (c *Client) ScanMany(ctx context.Context, opts []Options, limit int) []ScanOutcome {
	if limit <= 0 {
		limit = c.cfg.Scan.MaxParallel
	}
	if limit <= 0 {
		limit = 1
	}

	outcomes := make([]ScanOutcome, len(opts))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, o := range opts {
		g.Go(func() error {
			result, err := c.Scan(ctx, o)
			outcomes[i] = ScanOutcome{Host: o.Host, Result: result, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}
