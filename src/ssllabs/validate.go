// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule messages carried by [ValidationError].
const (
	RuleHostRequired       = "host required"
	RuleMutuallyExclusive  = "mutually exclusive"
	RuleMaxAgeNeedsCache   = "maxAge requires fromCache"
	RuleMaxAgePositive     = "maxAge must be a positive integer"
	RuleAllEnum            = "all must be on, off, or done"
	RuleEndpointIPRequired = "endpoint IP address required"
	RuleTrustStoreRange    = "trustStore must be a number between 1 and 5"
)

// Trust store bounds accepted by getRootCertsRaw.
const (
	MinTrustStore = 1
	MaxTrustStore = 5
)

var validate = validator.New()

// ValidateOptions checks a normalized option mapping and returns the first
// violated rule, in this order: host present, startNew and fromCache not
// both set, maxAge only with fromCache, maxAge a positive integer, all one
// of on/off/done.
func ValidateOptions(opts map[string]any) error {
	host, _ := opts[OptHost].(string)
	if validate.Var(strings.TrimSpace(host), "required") != nil {
		return &ValidationError{Field: OptHost, Rule: RuleHostRequired}
	}

	if isTrue(opts[OptStartNew]) && isTrue(opts[OptFromCache]) {
		return &ValidationError{Field: OptStartNew, Rule: RuleMutuallyExclusive}
	}

	if maxAge, ok := opts[OptMaxAge]; ok && maxAge != nil {
		if !isTrue(opts[OptFromCache]) {
			return &ValidationError{Field: OptMaxAge, Rule: RuleMaxAgeNeedsCache}
		}
		n, ok := integral(maxAge)
		if !ok || validate.Var(n, "gt=0") != nil {
			return &ValidationError{Field: OptMaxAge, Rule: RuleMaxAgePositive}
		}
	}

	if all, ok := opts[OptAll]; ok && all != nil {
		s, isString := all.(string)
		if !isString || validate.Var(s, "oneof=on off done") != nil {
			return &ValidationError{Field: OptAll, Rule: RuleAllEnum}
		}
	}

	return nil
}

// Validate checks the options the same way [ValidateOptions] does.
func (o Options) Validate() error {
	return ValidateOptions(o.Map())
}

// integral reports the value of v when it is a finite whole number.
func integral(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return wholeFloat(n)
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

// EndpointOptions selects one endpoint of an assessed host.
type EndpointOptions struct {
	Host string
	// S is the endpoint IP address.
	S         string
	FromCache *bool
}

// Validate checks that both the host and the endpoint IP are present.
func (o EndpointOptions) Validate() error {
	if validate.Var(strings.TrimSpace(o.Host), "required") != nil {
		return &ValidationError{Field: OptHost, Rule: RuleHostRequired}
	}
	if validate.Var(strings.TrimSpace(o.S), "required") != nil {
		return &ValidationError{Field: "s", Rule: RuleEndpointIPRequired}
	}
	return nil
}

func (o EndpointOptions) params() map[string]any {
	m := map[string]any{
		OptHost:      o.Host,
		"s":          o.S,
		OptFromCache: false,
	}
	if o.FromCache != nil {
		m[OptFromCache] = *o.FromCache
	}
	return m
}

// ParseTrustStore converts a trust store selector given as a number or a
// numeric string and checks that it lies in [1,5].
func ParseTrustStore(v any) (int, error) {
	invalid := &ValidationError{Field: "trustStore", Rule: RuleTrustStoreRange}

	var n int64
	switch t := v.(type) {
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, invalid
		}
		n = i
	default:
		i, ok := integral(v)
		if !ok {
			return 0, invalid
		}
		n = i
	}

	if validate.Var(n, "min=1,max=5") != nil {
		return 0, invalid
	}
	return int(n), nil
}
