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

// Package header provides the envelope shared by every document brewkit
// emits.
//
// A document has a kind, the schema version and string metadata, followed
// by a kind-specific spec:
//
//	kind: Calculation
//	apiVersion: brewkit/v1
//	metadata:
//	  calculator: abv
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.4.0
//	spec:
//	  abv: 6.825
//
// Timestamps are UTC and use RFC3339.
package header
