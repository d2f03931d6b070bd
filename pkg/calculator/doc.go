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

// Package calculator is the request layer shared by the brew CLI and the
// brewd API.
//
// Each calculator takes a request whose quantities are strings with an
// optional unit suffix ("25l", "68F", "12°P"), validates it, parses the
// quantities with pkg/measurement, runs the formula from pkg/calc and
// rounds the result for presentation:
//
//	c := calculator.New(calculator.WithCatalog(cat))
//	res, err := c.ABV(calculator.ABVRequest{OG: "1.066", FG: "1.014"})
//	// res.ABV == 6.825
//
// Malformed or missing input fails with ErrCodeInvalidInput; physically
// impossible input fails with ErrCodeDomain. Both come from pkg/errors, so
// the API can map them to 400 and 422 without inspecting messages.
package calculator
