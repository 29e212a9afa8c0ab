// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of the SSL Labs scanner.
// It implements a Cobra command tree over the [ssllabs] client: info,
// analyze, scan, endpoint, status-codes and root-certs. Output is a tree,
// a markdown table or JSON. The scan command can expose Prometheus metrics
// while it waits, and every command honours context cancellation so an
// interrupt aborts pending polls.
//
// [ssllabs]: https://pkg.go.dev/github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs
package cli
