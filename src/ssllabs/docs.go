// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ssllabs is a client for the [SSL Labs] assessment API.
//
// The remote service does all the grading. This package normalizes and
// validates the caller's parameters, issues the requests, and drives a
// long-running assessment to completion:
//
//   - [Normalize] and [ValidateOptions] turn loose input into a checked
//     option set before anything goes on the wire.
//   - Every request updates a shared [Capacity] cell from the
//     X-Current-Assessments and X-Max-Assessments headers.
//   - [Client.Poll] re-issues analyze until the assessment is READY or
//     ERROR, waiting 5s before it starts and 10s while it runs.
//   - [Client.Scan] checks info first and defers while the service is at
//     capacity, then hands over to the poll loop.
//
// Example usage:
//
//	client, err := ssllabs.NewClient()
//	if err != nil {
//		return err
//	}
//
//	host, err := client.ScanHost(ctx, "example.com")
//	if err != nil {
//		return err
//	}
//
//	for _, ep := range host.Endpoints {
//		fmt.Println(ep.IPAddress, ep.Grade)
//	}
//
// Failures are typed: [ValidationError] for bad input, [ClassifiedError]
// for everything the service or the network reports. Use [errors.Is] with
// the sentinels ([ErrRateLimited], [ErrOverloaded], ...) to branch on them.
//
// [SSL Labs]: https://www.ssllabs.com/projects/ssllabs-apis/
package ssllabs
