// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the scanner configuration. Defaults are overridden by
// an optional JSON or YAML file, which is in turn overridden by SSLLABS_*
// environment variables parsed with [envconfig].
//
// [envconfig]: https://github.com/kelseyhightower/envconfig
package config
