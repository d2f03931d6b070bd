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

// Package api provides the HTTP API layer for the brewkit calculators.
//
// This package is a thin wrapper around pkg/server: it loads the reference
// datasets, builds a calculator and registers the calculator and search
// routes. Server lifecycle, middleware and system endpoints are handled by
// pkg/server.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/mchmarny/brewkit/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Calculators accept a JSON body (or YAML when Content-Type is a YAML media
// type) and respond with JSON:
//
//	POST /calculate/abv               {"og": "1.064", "fg": "1.012"}
//	POST /calculate/abw               {"percent": 5, "volume": "330ml"}
//	POST /calculate/fg                {"og": "1.050", "attenuation": 75}
//	POST /calculate/bottles           {"volume": "25l"}
//	POST /calculate/calories          {"abv": 5}
//	POST /calculate/dilution          {"gravity": "1.060", "volume": "10l", "target_volume": "12l"}
//	POST /calculate/sg-correction     {"sg": "1.050", "calibration_temperature": "20C", "measured_temperature": "30C"}
//	POST /calculate/priming           {"temperature": "20C", "volume": "25l", "co2": 2.2}
//	POST /calculate/ibu               {"volume": "20l", "gravity": "1.050", "additions": [...]}
//	POST /calculate/bittering         {"target_ibu": 40, "alpha_acid": 10, "time": 60, ...}
//	POST /calculate/yeast-viability   {"production_date": "01/01/2026"}
//
// Dataset searches take their criteria from query parameters:
//
//	GET /styles?name=ipa&abv=6.5
//	GET /hops?purpose=Aroma&country=USA
//	GET /yeasts?type=Ale&attenuation=75
//
// Search responses carry a Cache-Control header since the datasets do not
// change while the process runs.
//
// # Errors
//
// Invalid input is reported as 400 INVALID_INPUT with the offending field in
// the details. Requests outside a formula's domain (such as a calories
// lookup past the table) are 422 DOMAIN_ERROR.
//
// # Configuration
//
// Dataset locations can be overridden with environment variables, read
// from the process environment or a .env file in the working directory:
//
//	BREWKIT_STYLES_PATH    beer styles file path or URL
//	BREWKIT_HOPS_PATH      hops file path or URL
//	BREWKIT_YEASTS_PATH    yeasts file path or URL
//	BREWKIT_CALORIES_PATH  ABV to calories table file path or URL
//
// Server settings (PORT, RATE_LIMIT, ...) are documented in pkg/server.
package api
