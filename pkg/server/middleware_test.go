// Copyright (c) 2025, The Brewkit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
)

func testServer(limiter *rate.Limiter) *Server {
	if limiter == nil {
		limiter = rate.NewLimiter(100, 200)
	}
	return &Server{config: NewConfig(), rateLimiter: limiter}
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	provided := uuid.NewString()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"generated when missing", "", false},
		{"caller id kept", provided, true},
		{"invalid id replaced", "not-a-uuid", false},
	}

	s := testServer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				got = RequestID(r.Context())
				ok(w, r)
			})

			req := httptest.NewRequest(http.MethodGet, "/styles", nil)
			if tt.header != "" {
				req.Header.Set(headerRequestID, tt.header)
			}
			rec := serve(h, req)

			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, got, rec.Header().Get(headerRequestID))
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	var got string
	h := testServer(nil).versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		got = APIVersion(r.Context())
		ok(w, r)
	})

	req := httptest.NewRequest(http.MethodGet, "/hops", nil)
	req.Header.Set("Accept", "application/vnd.brewkit.v1+json")
	rec := serve(h, req)

	assert.Equal(t, "v1", got)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
}

func TestAPIVersionDefault(t *testing.T) {
	assert.Equal(t, DefaultAPIVersion, APIVersion(context.Background()))
	assert.Empty(t, RequestID(context.Background()))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		called := false
		h := testServer(nil).rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			called = true
			ok(w, r)
		})

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/yeasts", nil))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		for _, name := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
			assert.NotEmpty(t, rec.Header().Get(name), name)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		called := false
		h := testServer(rate.NewLimiter(0, 0)).rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			called = true
			ok(w, r)
		})

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/styles", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, string(brewerrors.ErrCodeRateLimitExceeded), resp.Code)
		assert.True(t, resp.Retryable)
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := testServer(nil)

	rec := serve(s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("boil over")
	}), httptest.NewRequest(http.MethodPost, "/calculate/abv", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(brewerrors.ErrCodeInternal), resp.Code)

	rec = serve(s.panicRecoveryMiddleware(ok), httptest.NewRequest(http.MethodGet, "/styles", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoggingMiddlewarePassesStatus(t *testing.T) {
	s := testServer(nil)

	for _, status := range []int{
		http.StatusOK,
		http.StatusCreated,
		http.StatusBadRequest,
		http.StatusUnprocessableEntity,
		http.StatusInternalServerError,
	} {
		h := s.requestIDMiddleware(s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/hops", nil))
		assert.Equal(t, status, rec.Code)
	}
}

func TestBodyLimitMiddleware(t *testing.T) {
	s := testServer(nil)
	s.config.MaxRequestBodyBytes = 8

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"under limit", "{}", false},
		{"at limit", "12345678", false},
		{"over limit", "123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			h := s.bodyLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
				_, readErr = io.ReadAll(r.Body)
				ok(w, r)
			})

			serve(h, httptest.NewRequest(http.MethodPost, "/calculate/abv", strings.NewReader(tt.body)))

			if !tt.wantErr {
				assert.NoError(t, readErr)
				return
			}
			var maxErr *http.MaxBytesError
			assert.True(t, errors.As(readErr, &maxErr), "got %v", readErr)
		})
	}
}

func TestMiddlewareChain(t *testing.T) {
	var requestID, version string
	h := testServer(nil).withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		requestID = RequestID(r.Context())
		version = APIVersion(r.Context())
		ok(w, r)
	})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/calculate/ibu", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, DefaultAPIVersion, version)
	for _, name := range []string{
		headerRequestID,
		"X-API-Version",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
	} {
		assert.NotEmpty(t, rec.Header().Get(name), name)
	}
}
