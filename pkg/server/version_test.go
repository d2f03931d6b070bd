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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := map[string]string{
		"":                                                 DefaultAPIVersion,
		"application/json":                                 DefaultAPIVersion,
		"application/vnd.brewkit.v1+json":                  "v1",
		"application/vnd.brewkit.v1+yaml":                  "v1",
		"application/vnd.brewkit.v1":                       "v1",
		"text/html, application/vnd.brewkit.v1+json;q=0.9": "v1",
		"application/vnd.brewkit.v2+json":                  DefaultAPIVersion,
		"application/vnd.brewkit.vBAD+json":                DefaultAPIVersion,
		"application/vnd.other.v1+json":                    DefaultAPIVersion,
	}

	for accept, want := range tests {
		t.Run(accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/styles", nil)
			if accept != "" {
				req.Header.Set("Accept", accept)
			}
			assert.Equal(t, want, negotiateAPIVersion(req))
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	assert.True(t, isValidAPIVersion("v1"))
	for _, v := range []string{"", "v2", "V1", "1"} {
		assert.False(t, isValidAPIVersion(v), v)
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAPIVersionHeader(rec, DefaultAPIVersion)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
}
