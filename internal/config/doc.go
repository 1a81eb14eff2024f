// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the records dashboard client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to whatever is still zero after merging. The main
// entry point is [GetClientConfig], which returns a validated [ClientConfig]
// or a [*ConfigurationError] when the backend endpoint or key is missing.
package config
