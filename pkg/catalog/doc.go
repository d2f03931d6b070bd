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

// Package catalog holds the reference datasets used by the search
// commands: beer styles, hops, yeasts and the ABV to calories table.
//
// The datasets ship embedded in the binary as JSON. Any of them can be
// replaced at load time with a JSON or YAML document read from a local
// path or an http(s) URL:
//
//	cat, err := catalog.Load(ctx,
//	    catalog.WithHopsPath("https://example.com/hops.yaml"),
//	)
//
// Every record is validated when loaded. A Catalog is immutable once
// Load returns and is safe for concurrent use; accessors and searches
// return copies.
//
// Searches take a criteria struct whose fields are pointers. A nil field
// matches every record, so the zero criteria lists the whole dataset:
//
//	abv := 5.0
//	styles := cat.FindStyles(catalog.StyleCriteria{ABV: &abv})
//
// Criteria can be built from URL query parameters with ParseStyleCriteria,
// ParseHopCriteria and ParseYeastCriteria.
package catalog
