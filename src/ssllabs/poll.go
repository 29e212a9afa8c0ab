// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"context"
	"fmt"
	"time"
)

// Poll drives one assessment to a terminal status.
//
// The first call sends opts as given. Every later call omits startNew so
// the service treats it as a status check. Between calls the loop waits
// the in-progress delay (10s by default) after IN_PROGRESS and the
// not-started delay (5s by default) after any other non-terminal status.
// There is no iteration limit; ctx is the only bound.
//
// Parameters:
//   - ctx: Context for cancellation of a pending wait or request
//   - opts: Assessment options, validated before the first call
//
// Returns:
//   - *Host: The READY or ERROR assessment; ERROR is a result, not a failure
//   - error: [ValidationError], the first [ClassifiedError], or an error
//     wrapping ctx.Err() on cancellation
func (c *Client) Poll(ctx context.Context, opts Options) (*Host, error) {
	params := withDefaults(opts.Map(), analyzeDefaults)
	if err := ValidateOptions(params); err != nil {
		return nil, err
	}
	return c.poll(ctx, params)
}

// poll owns params and mutates it.
func (c *Client) poll(ctx context.Context, params map[string]any) (*Host, error) {
	for {
		host, err := c.analyze(ctx, params)
		if err != nil {
			return nil, err
		}

		observePoll(host.Status)
		if host.Terminal() {
			return host, nil
		}

		delete(params, OptStartNew)

		delay := c.pollDelay(host.Status)
		c.debugf("ssllabs: %s is %s, next check in %s", params[OptHost], host.Status, delay)

		if err := c.wait(ctx, delay); err != nil {
			return nil, fmt.Errorf("ssllabs: polling %s: %w", params[OptHost], err)
		}
	}
}

func (c *Client) pollDelay(status string) time.Duration {
	if status == StatusInProgress {
		return c.inProgressDelay
	}
	return c.notStartedDelay
}
