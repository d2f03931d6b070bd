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
	"time"

	"github.com/mchmarny/brewkit/pkg/serializer"
)

// Health states reported by the system endpoints.
const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

func (s *Server) health(status, reason string) HealthResponse {
	now := time.Now()
	return HealthResponse{
		Status:    status,
		Name:      s.config.Name,
		Version:   s.config.Version,
		Uptime:    int64(now.Sub(s.startedAt) / time.Second),
		Timestamp: now.UTC(),
		Reason:    reason,
	}
}

// handleHealth reports liveness. It succeeds as long as the process serves
// requests.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, s.health(statusHealthy, ""))
}

// handleReady reports whether the calculators can take traffic. It fails
// until Start has bound the listener and again once shutdown begins.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.IsReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable,
			s.health(statusNotReady, "server is not accepting requests"))
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.health(statusReady, ""))
}
