// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/records-dashboard/internal/config"
)

const testAnonKey = "anon-key"

// fakeBackend emulates the REST gateway's count endpoint and records the
// headers and query of every request it sees.
type fakeBackend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	counts   map[string]int
	status   int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{counts: map[string]int{}, status: http.StatusOK}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			fb.mu.Lock()
			fb.requests = append(fb.requests, req.Clone(req.Context()))
			fb.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})
	r.Head("/rest/v1/{table}", func(w http.ResponseWriter, req *http.Request) {
		fb.mu.Lock()
		status := fb.status
		count, ok := fb.counts[chi.URLParam(req, "table")]
		fb.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if req.Header.Get("Prefer") == "count=exact" {
			if count == 0 {
				w.Header().Set("Content-Range", "*/0")
			} else {
				w.Header().Set("Content-Range", "0-"+strconv.Itoa(count-1)+"/"+strconv.Itoa(count))
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	fb.Server = httptest.NewServer(r)
	t.Cleanup(fb.Close)
	return fb
}

func (fb *fakeBackend) setCount(table string, n int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.counts[table] = n
}

func (fb *fakeBackend) setStatus(status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.status = status
}

func (fb *fakeBackend) lastRequest() *http.Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.requests) == 0 {
		return nil
	}
	return fb.requests[len(fb.requests)-1]
}

func (fb *fakeBackend) requestCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

func (fb *fakeBackend) backendConfig() config.ClientBackend {
	return config.ClientBackend{
		EndpointURL:    fb.URL,
		AnonKey:        testAnonKey,
		RequestTimeout: 5 * time.Second,
	}
}
