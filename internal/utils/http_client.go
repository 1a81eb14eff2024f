// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient bound to baseURL with the given
// request timeout. A non-positive timeout leaves resty's default (none).
//
// Each call returns an independent client instance with its own
// configuration, headers and connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.example.com", 15*time.Second)
//	resp, err := client.R().Get("/rest/v1/contacts")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
