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

package defaults

import "time"

// API request limits.
const (
	// CalculateHandlerTimeout bounds one calculator request, body decoding included.
	CalculateHandlerTimeout = 5 * time.Second

	// SearchHandlerTimeout bounds one style, hop or yeast search.
	SearchHandlerTimeout = 10 * time.Second

	// SearchCacheTTL is the max-age sent with search responses. The datasets
	// are loaded once at startup.
	SearchCacheTTL = 10 * time.Minute

	// MaxRequestBodyBytes caps a request body. Calculator inputs are a few
	// short fields, so 64KiB is generous.
	MaxRequestBodyBytes = 64 << 10
)

// brewd listener settings.
const (
	ServerReadTimeout       = 10 * time.Second
	ServerReadHeaderTimeout = 5 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	// ServerShutdownTimeout is how long in-flight requests get to finish
	// once a shutdown signal arrives.
	ServerShutdownTimeout = 30 * time.Second
)

// Dataset loading.
const (
	// CatalogLoadTimeout bounds loading all four datasets, remote
	// overrides included.
	CatalogLoadTimeout = 30 * time.Second

	// HTTPClientTimeout bounds a single remote dataset download.
	HTTPClientTimeout = 30 * time.Second

	// Transport settings of the download client.
	HTTPConnectTimeout        = 5 * time.Second
	HTTPTLSHandshakeTimeout   = 5 * time.Second
	HTTPResponseHeaderTimeout = 10 * time.Second
	HTTPIdleConnTimeout       = 90 * time.Second
	HTTPKeepAlive             = 30 * time.Second
)
