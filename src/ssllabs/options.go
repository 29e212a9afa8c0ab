// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Option names as sent on the wire.
const (
	OptHost           = "host"
	OptStartNew       = "startNew"
	OptFromCache      = "fromCache"
	OptMaxAge         = "maxAge"
	OptAll            = "all"
	OptPublish        = "publish"
	OptIgnoreMismatch = "ignoreMismatch"
)

// Values accepted by the all option.
const (
	AllOn   = "on"
	AllOff  = "off"
	AllDone = "done"
)

var boolTokens = map[string]bool{
	"on":    true,
	"yes":   true,
	"true":  true,
	"1":     true,
	"off":   false,
	"no":    false,
	"false": false,
	"0":     false,
}

// Options is the typed parameter set for starting or polling an assessment.
// Nil pointers mean the option is omitted from the request.
type Options struct {
	Host           string
	StartNew       *bool
	FromCache      *bool
	MaxAge         *int
	All            string
	Publish        *bool
	IgnoreMismatch *bool
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Map renders the options as the mapping consumed by the validator and
// the request executor. Omitted options are absent from the result.
func (o Options) Map() map[string]any {
	m := map[string]any{OptHost: o.Host}
	if o.StartNew != nil {
		m[OptStartNew] = *o.StartNew
	}
	if o.FromCache != nil {
		m[OptFromCache] = *o.FromCache
	}
	if o.MaxAge != nil {
		m[OptMaxAge] = *o.MaxAge
	}
	if o.All != "" {
		m[OptAll] = o.All
	}
	if o.Publish != nil {
		m[OptPublish] = *o.Publish
	}
	if o.IgnoreMismatch != nil {
		m[OptIgnoreMismatch] = *o.IgnoreMismatch
	}
	return m
}

// Normalize coerces caller input into the canonical option types.
//
// Boolean options accept on/off, yes/no, true/false and 1/0 in any case.
// The all option maps booleans and those tokens to "on" or "off". maxAge
// given as a numeric string or a whole float becomes an int. Anything
// unrecognized passes through unchanged so the validator can reject it.
// Unknown keys are copied as-is.
//
// Normalize never modifies raw and is idempotent.
func Normalize(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case OptStartNew, OptFromCache, OptPublish, OptIgnoreMismatch:
			out[key] = normalizeBool(value)
		case OptAll:
			out[key] = normalizeAll(value)
		case OptMaxAge:
			out[key] = normalizeInt(value)
		default:
			out[key] = value
		}
	}
	return out
}

func parseBoolToken(s string) (bool, bool) {
	v, ok := boolTokens[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

func normalizeBool(value any) any {
	switch v := value.(type) {
	case string:
		if b, ok := parseBoolToken(v); ok {
			return b
		}
	case int:
		switch v {
		case 1:
			return true
		case 0:
			return false
		}
	case float64:
		switch v {
		case 1:
			return true
		case 0:
			return false
		}
	}
	return value
}

func normalizeAll(value any) any {
	switch v := value.(type) {
	case bool:
		if v {
			return AllOn
		}
		return AllOff
	case string:
		if b, ok := parseBoolToken(v); ok {
			return normalizeAll(b)
		}
	}
	return value
}

// normalizeInt converts integral input to int and leaves everything else,
// including NaN and infinities, for the validator.
func normalizeInt(value any) any {
	switch v := value.(type) {
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		if n, ok := wholeFloat(v); ok {
			return int(n)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return value
}

// wholeFloat reports whether f is a finite whole number that fits an int,
// returning it converted.
func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < float64(math.MinInt) || f >= float64(math.MaxInt) {
		return 0, false
	}
	return int64(f), true
}

// withDefaults returns params with every default merged under the caller's
// values. Neither input is modified.
func withDefaults(params, defaults map[string]any) map[string]any {
	out := make(map[string]any, len(params)+len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range params {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
