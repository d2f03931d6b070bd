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

// Package measurement provides immutable physical quantities used by the
// brewing calculators and the parsers that turn free-form strings into them.
//
// # Core Types
//
// Each type stores one float64 in a canonical unit and converts on access:
//   - Temperature: canonical Celsius
//   - Volume: canonical liters
//   - Mass: canonical grams
//   - Density: canonical specific gravity, with Plato and Brix computed from
//     empirical polynomials
//   - Energy: canonical joules
//
// Values are built with FromX constructors and never mutated:
//
//	v := measurement.FromGallons(5)
//	fmt.Println(v.Liters()) // 18.92705892
//
// # Parsing
//
// Parsers infer the unit from a trailing suffix, matched case-insensitively and
// longest suffix first, so "5ml" is milliliters and not liters:
//
//	v, err := measurement.ParseVolume("25l")
//	t, err := measurement.ParseTemperature("68F")
//	d, err := measurement.ParseDensity("12°P")
//
// An empty string yields a zero quantity. A string without a recognized suffix
// is read as a number in the canonical unit. A malformed number is an
// INVALID_INPUT error from pkg/errors.
//
// String renders a quantity in its canonical unit so that parsing the result
// yields the same value.
package measurement
