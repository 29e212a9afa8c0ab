// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// ssllabs-scan is a command-line client for the SSL Labs assessment API.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/ssllabs-scanner/cmd/ssllabs-scan@latest
//
// # Usage
//
//	ssllabs-scan [--config FILE] [--debug] COMMAND [FLAGS]
//
// # Commands
//
//	info                      Engine version and assessment capacity
//	analyze HOST              One analyze call, no waiting
//	scan HOST...              Wait for capacity, then poll until READY or ERROR
//	endpoint HOST IP          Detailed report for one endpoint
//	status-codes              Status detail code dictionary
//	root-certs                Root certificates of a trust store
//
// # Examples
//
// Assess a host, reusing a cached report up to a day old:
//
//	ssllabs-scan scan example.com
//
// Force a fresh assessment and print JSON:
//
//	ssllabs-scan scan --start-new --json example.com
//
// Scan several hosts, two at a time, exposing Prometheus metrics:
//
//	ssllabs-scan scan -p 2 --metrics-addr :9090 example.com example.org
//
// Exit status is 1 when any request or scan fails and 130 on interrupt.
package main
