// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssllabs

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  map[string]any
		field string
		rule  string
	}{
		{name: "Missing Host", opts: map[string]any{}, field: OptHost, rule: RuleHostRequired},
		{name: "Empty Host", opts: map[string]any{OptHost: "  "}, field: OptHost, rule: RuleHostRequired},
		{name: "Host Wrong Type", opts: map[string]any{OptHost: 42}, field: OptHost, rule: RuleHostRequired},
		{
			name:  "StartNew And FromCache",
			opts:  map[string]any{OptHost: "x", OptStartNew: true, OptFromCache: true},
			field: OptStartNew,
			rule:  RuleMutuallyExclusive,
		},
		{
			name:  "MaxAge Without FromCache",
			opts:  map[string]any{OptHost: "x", OptMaxAge: 24},
			field: OptMaxAge,
			rule:  RuleMaxAgeNeedsCache,
		},
		{
			name:  "MaxAge With FromCache Off",
			opts:  map[string]any{OptHost: "x", OptFromCache: false, OptMaxAge: 24},
			field: OptMaxAge,
			rule:  RuleMaxAgeNeedsCache,
		},
		{
			name:  "MaxAge Negative",
			opts:  map[string]any{OptHost: "x", OptFromCache: true, OptMaxAge: -1},
			field: OptMaxAge,
			rule:  RuleMaxAgePositive,
		},
		{
			name:  "MaxAge Zero",
			opts:  map[string]any{OptHost: "x", OptFromCache: true, OptMaxAge: 0},
			field: OptMaxAge,
			rule:  RuleMaxAgePositive,
		},
		{
			name:  "MaxAge NaN",
			opts:  map[string]any{OptHost: "x", OptFromCache: true, OptMaxAge: math.NaN()},
			field: OptMaxAge,
			rule:  RuleMaxAgePositive,
		},
		{
			name:  "MaxAge Infinity",
			opts:  map[string]any{OptHost: "x", OptFromCache: true, OptMaxAge: math.Inf(1)},
			field: OptMaxAge,
			rule:  RuleMaxAgePositive,
		},
		{
			name:  "MaxAge Fraction",
			opts:  map[string]any{OptHost: "x", OptFromCache: true, OptMaxAge: 1.5},
			field: OptMaxAge,
			rule:  RuleMaxAgePositive,
		},
		{
			name:  "MaxAge Beyond Integer Range",
			opts:  map[string]any{OptHost: "x", OptFromCache: true, OptMaxAge: 1e19},
			field: OptMaxAge,
			rule:  RuleMaxAgePositive,
		},
		{
			name:  "MaxAge Non Numeric",
			opts:  map[string]any{OptHost: "x", OptFromCache: true, OptMaxAge: "x"},
			field: OptMaxAge,
			rule:  RuleMaxAgePositive,
		},
		{
			name:  "All Bogus",
			opts:  map[string]any{OptHost: "x", OptAll: "bogus"},
			field: OptAll,
			rule:  RuleAllEnum,
		},
		{
			name:  "All Wrong Type",
			opts:  map[string]any{OptHost: "x", OptAll: 1},
			field: OptAll,
			rule:  RuleAllEnum,
		},
		{
			name:  "First Violation Wins",
			opts:  map[string]any{OptStartNew: true, OptFromCache: true, OptAll: "bogus"},
			field: OptHost,
			rule:  RuleHostRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.rule, verr.Rule)
		})
	}
}

func TestValidateOptions_Valid(t *testing.T) {
	valid := []map[string]any{
		{OptHost: "x"},
		{OptHost: "x", OptFromCache: true, OptMaxAge: 1},
		{OptHost: "x", OptFromCache: true, OptMaxAge: 17532},
		{OptHost: "x", OptFromCache: true, OptMaxAge: float64(24)},
		{OptHost: "x", OptFromCache: true, OptMaxAge: 3e9},
		{OptHost: "x", OptAll: "done"},
		{OptHost: "x", OptAll: "on"},
		{OptHost: "x", OptStartNew: true, OptFromCache: false},
		{OptHost: "x", OptMaxAge: nil},
	}

	for _, opts := range valid {
		assert.NoError(t, ValidateOptions(opts), "%v", opts)
	}
}

func TestValidateOptions_AfterNormalize(t *testing.T) {
	assert.NoError(t, ValidateOptions(Normalize(map[string]any{
		OptHost: "x", OptFromCache: "on", OptMaxAge: "24", OptAll: true,
	})))

	err := ValidateOptions(Normalize(map[string]any{
		OptHost: "x", OptFromCache: "on", OptMaxAge: "x",
	}))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEndpointOptions_Validate(t *testing.T) {
	var verr *ValidationError

	err := EndpointOptions{S: "192.0.2.1"}.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, OptHost, verr.Field)

	err = EndpointOptions{Host: "example.com"}.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "s", verr.Field)
	assert.Equal(t, RuleEndpointIPRequired, verr.Rule)

	err = EndpointOptions{}.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, OptHost, verr.Field, "host is checked before the endpoint IP")

	assert.NoError(t, EndpointOptions{Host: "example.com", S: "192.0.2.1"}.Validate())
}

func TestParseTrustStore(t *testing.T) {
	for _, bad := range []any{"a", "", 0, 6, -1, "0", "6", 2.5, math.NaN(), nil, true} {
		_, err := ParseTrustStore(bad)
		assert.ErrorIs(t, err, ErrValidation, "%v", bad)
	}

	for i := MinTrustStore; i <= MaxTrustStore; i++ {
		n, err := ParseTrustStore(i)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	n, err := ParseTrustStore(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ParseTrustStore(float64(4))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
