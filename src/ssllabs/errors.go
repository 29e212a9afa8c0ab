// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrValidation is matched by every [ValidationError].
	ErrValidation = errors.New("ssllabs: invalid parameters")

	// ErrInvocation indicates the service rejected the request parameters (HTTP 400).
	ErrInvocation = errors.New("ssllabs: invocation error")

	// ErrRateLimited indicates too many requests from this client (HTTP 429).
	ErrRateLimited = errors.New("ssllabs: rate limited")

	// ErrInternal indicates an internal failure on the service side (HTTP 500).
	ErrInternal = errors.New("ssllabs: internal error")

	// ErrUnavailable indicates the service is down for maintenance (HTTP 503).
	ErrUnavailable = errors.New("ssllabs: service unavailable")

	// ErrOverloaded indicates the service is overloaded (HTTP 529).
	ErrOverloaded = errors.New("ssllabs: service overloaded")

	// ErrTransport indicates a connection failure or an unexpected HTTP status.
	ErrTransport = errors.New("ssllabs: transport failure")

	// ErrDecode indicates a successful response whose body could not be decoded.
	ErrDecode = errors.New("ssllabs: malformed response")
)

// ValidationError reports a parameter that breaks an invariant. It is
// raised locally, before any request is issued.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ssllabs: invalid %s: %s", e.Field, e.Rule)
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ErrorKind classifies a failed request.
type ErrorKind int

const (
	// KindTransport covers connection failures and unrecognized statuses.
	KindTransport ErrorKind = iota
	KindInvocation
	KindRateLimited
	KindInternal
	KindUnavailable
	KindOverloaded
	KindDecode
)

// StatusOverloaded is the non-standard status the service sends when overloaded.
const StatusOverloaded = 529

var kindNames = map[ErrorKind]string{
	KindTransport:   "transport",
	KindInvocation:  "invocation",
	KindRateLimited: "rate_limited",
	KindInternal:    "internal",
	KindUnavailable: "unavailable",
	KindOverloaded:  "overloaded",
	KindDecode:      "decode",
}

var kindSentinels = map[ErrorKind]error{
	KindTransport:   ErrTransport,
	KindInvocation:  ErrInvocation,
	KindRateLimited: ErrRateLimited,
	KindInternal:    ErrInternal,
	KindUnavailable: ErrUnavailable,
	KindOverloaded:  ErrOverloaded,
	KindDecode:      ErrDecode,
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// kindForStatus maps an HTTP status to an error kind. The boolean is false
// for statuses the service does not document.
func kindForStatus(code int) (ErrorKind, bool) {
	switch code {
	case http.StatusBadRequest:
		return KindInvocation, true
	case http.StatusTooManyRequests:
		return KindRateLimited, true
	case http.StatusInternalServerError:
		return KindInternal, true
	case http.StatusServiceUnavailable:
		return KindUnavailable, true
	case StatusOverloaded:
		return KindOverloaded, true
	}
	return KindTransport, false
}

// APIError is one entry of the error list the service returns with a 400.
type APIError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ClassifiedError is a failed request, classified by cause.
//
// Errors and Body are populated when the service answered with a structured
// error document.
type ClassifiedError struct {
	Kind       ErrorKind
	Operation  string
	StatusCode int
	Errors     []APIError
	Body       json.RawMessage
	Err        error
}

func (e *ClassifiedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ssllabs: %s: %s", e.Operation, strings.TrimPrefix(kindSentinels[e.Kind].Error(), "ssllabs: "))
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	for _, apiErr := range e.Errors {
		if apiErr.Field != "" {
			fmt.Fprintf(&b, "; %s: %s", apiErr.Field, apiErr.Message)
		} else {
			fmt.Fprintf(&b, "; %s", apiErr.Message)
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is matches the sentinel of the error's kind.
func (e *ClassifiedError) Is(target error) bool {
	return target == kindSentinels[e.Kind]
}

func (e *ClassifiedError) Unwrap() error { return e.Err }

// newStatusError builds the error for a non-200 response.
func newStatusError(operation string, code int, body []byte) *ClassifiedError {
	kind, known := kindForStatus(code)
	ce := &ClassifiedError{
		Kind:       kind,
		Operation:  operation,
		StatusCode: code,
	}
	if !known || !json.Valid(body) {
		return ce
	}

	ce.Body = json.RawMessage(body)

	var doc struct {
		Errors []APIError `json:"errors"`
	}
	if err := json.Unmarshal(body, &doc); err == nil {
		ce.Errors = doc.Errors
	}
	return ce
}
