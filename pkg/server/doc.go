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

// Package server is the reusable HTTP server behind brewd.
//
// It owns the listener lifecycle and the middleware chain. Applications
// supply only their handlers:
//
//	s := server.New(
//	    server.WithName("brewd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /styles": h.HandleStyles,
//	        "GET /hops":   h.HandleHops,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handler keys are "METHOD /path", or a bare "/path" to accept any method.
//
// # Middleware
//
// Every registered handler runs behind, from outermost to innermost:
// metrics, API version negotiation, request ID, panic recovery, rate
// limiting, request body limit and request logging. The router itself
// adds CORS and gzip response compression for all routes.
//
// # System Endpoints
//
//	GET /         - server name, version, readiness and route list
//	GET /health   - liveness probe, always 200
//	GET /ready    - readiness probe, 503 until the server is listening
//	GET /metrics  - Prometheus metrics
//
// # Errors
//
// Errors are written as ErrorResponse JSON with a code from pkg/errors,
// the request ID and a retryable flag. WriteErrorFromErr maps
// INVALID_INPUT to 400 and DOMAIN_ERROR to 422; see HTTPStatusFromCode.
//
// # Configuration
//
// Defaults can be overridden with environment variables:
//
//	ADDRESS                   listen address (default all interfaces)
//	PORT                      listen port (default 8080)
//	RATE_LIMIT                requests per second (default 100)
//	RATE_LIMIT_BURST          burst size (default 200)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown window (default 30)
//	CORS_ALLOWED_ORIGINS      comma separated origins (default *)
//
// If any of them is invalid, a warning is logged and all defaults are used.
//
// Request IDs are read from X-Request-Id when it holds a UUID and are
// generated otherwise. Clients may request an API version with
// Accept: application/vnd.brewkit.v1+json; the negotiated version is
// returned in X-API-Version.
package server
