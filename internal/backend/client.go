// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/records-dashboard/internal/config"
	"github.com/MKhiriev/records-dashboard/internal/utils"
)

// Header names attached by [Client].
const (
	HeaderAPIKey        = "apikey"
	HeaderAuthorization = "Authorization"
	HeaderClientInfo    = "X-Client-Info"
	HeaderRequestID     = "X-Request-Id"
)

// ClientInfo identifies this client to the backend.
var ClientInfo = "records-dashboard/dev"

// Client is a handle bound to (endpoint, key, headers). It is immutable after
// construction and owns its own HTTP client, so handles acquired under
// different session tokens never share headers.
type Client struct {
	http *utils.HTTPClient

	endpoint      string
	apiKey        string
	authorization string
	headers       http.Header
}

func newClient(cfg config.ClientBackend, token string) *Client {
	authorization := utils.BearerValue(token)

	headers := make(http.Header, 3)
	headers.Set(HeaderAPIKey, cfg.AnonKey)
	headers.Set(HeaderClientInfo, ClientInfo)
	if authorization != "" {
		headers.Set(HeaderAuthorization, authorization)
	}

	httpClient := utils.NewHTTPClient(cfg.EndpointURL, cfg.RequestTimeout)
	for name, values := range headers {
		httpClient.SetHeader(name, values[0])
	}

	return &Client{
		http:          httpClient,
		endpoint:      cfg.EndpointURL,
		apiKey:        cfg.AnonKey,
		authorization: authorization,
		headers:       headers,
	}
}

// Endpoint returns the base URL the client is bound to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// APIKey returns the public API key sent in the apikey header.
func (c *Client) APIKey() string {
	return c.apiKey
}

// AuthorizationHeader returns "Bearer <token>" for an authenticated handle
// and "" for an anonymous one.
func (c *Client) AuthorizationHeader() string {
	return c.authorization
}

// Anonymous reports whether the handle was built without a session token.
func (c *Client) Anonymous() bool {
	return c.authorization == ""
}

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// R starts a request carrying the handle's headers and a fresh request id.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, utils.NewRequestID())
}
