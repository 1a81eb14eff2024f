// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/records-dashboard/internal/logger"
	"github.com/MKhiriev/records-dashboard/internal/store"
	"github.com/MKhiriev/records-dashboard/models"
)

func newTestClient(t *testing.T, fb *fakeBackend, token string) *Client {
	t.Helper()
	factory, err := NewClientFactory(fb.backendConfig(), store.NewMemoryTokenStore(token), logger.Nop())
	require.NoError(t, err)
	client, err := factory.AcquireClient(context.Background())
	require.NoError(t, err)
	return client
}

func TestIncompleteQuery(t *testing.T) {
	q := IncompleteQuery(models.RecordSource{Table: "contacts", Column: "email", Noun: "contacts"})

	assert.Equal(t, "contacts", q.Table)
	assert.Equal(t, map[string]string{"email": "is.null"}, q.Filters)
}

func TestRecordQuery_URL(t *testing.T) {
	q := IncompleteQuery(models.RecordSource{Table: "contacts", Column: "email"})

	assert.Equal(t,
		"https://project.example.co/rest/v1/contacts?email=is.null&select=%2A",
		q.URL("https://project.example.co/"))
}

func TestCountRecords(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "none", count: 0},
		{name: "one", count: 1},
		{name: "many", count: 57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newFakeBackend(t)
			fb.setCount("contacts", tt.count)
			client := newTestClient(t, fb, "abc123")

			got, err := client.CountRecords(context.Background(), IncompleteQuery(models.RecordSource{Table: "contacts", Column: "email"}))
			require.NoError(t, err)
			assert.Equal(t, tt.count, got)

			req := fb.lastRequest()
			require.NotNil(t, req)
			assert.Equal(t, http.MethodHead, req.Method)
			assert.Equal(t, "/rest/v1/contacts", req.URL.Path)
			assert.Equal(t, "*", req.URL.Query().Get("select"))
			assert.Equal(t, "is.null", req.URL.Query().Get("email"))
			assert.Equal(t, "count=exact", req.Header.Get("Prefer"))
			assert.NotEmpty(t, req.Header.Get(HeaderRequestID))
			assert.Equal(t, ClientInfo, req.Header.Get(HeaderClientInfo))
		})
	}
}

func TestCountRecords_FreshRequestIDs(t *testing.T) {
	fb := newFakeBackend(t)
	fb.setCount("contacts", 2)
	client := newTestClient(t, fb, "")
	ctx := context.Background()

	_, err := client.CountRecords(ctx, RecordQuery{Table: "contacts"})
	require.NoError(t, err)
	first := fb.lastRequest().Header.Get(HeaderRequestID)

	_, err = client.CountRecords(ctx, RecordQuery{Table: "contacts"})
	require.NoError(t, err)
	second := fb.lastRequest().Header.Get(HeaderRequestID)

	assert.Equal(t, 2, fb.requestCount())
	assert.NotEqual(t, first, second)
}

func TestCountRecords_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newFakeBackend(t)
			fb.setStatus(tt.status)
			client := newTestClient(t, fb, "abc123")

			_, err := client.CountRecords(context.Background(), RecordQuery{Table: "contacts"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCountRecords_UnknownTable(t *testing.T) {
	fb := newFakeBackend(t)
	client := newTestClient(t, fb, "")

	_, err := client.CountRecords(context.Background(), RecordQuery{Table: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseContentRangeTotal(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "range", value: "0-24/57", want: 57},
		{name: "empty result", value: "*/0", want: 0},
		{name: "unit prefix", value: "items 0-9/10", want: 10},
		{name: "spaces", value: "  0-0/1 ", want: 1},
		{name: "missing", value: "", wantErr: true},
		{name: "unknown total", value: "0-24/*", wantErr: true},
		{name: "no slash", value: "0-24", wantErr: true},
		{name: "garbage total", value: "0-24/abc", wantErr: true},
		{name: "negative total", value: "*/-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseContentRangeTotal(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
