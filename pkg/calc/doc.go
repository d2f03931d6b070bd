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

// Package calc implements the brewing formulas used by the brew CLI and the
// brewd API.
//
// Every function is pure and works on the quantity types from pkg/measurement,
// so callers never pass a bare number whose unit is ambiguous. Functions that
// can be asked for something physically impossible return an error carrying
// ErrCodeDomain from pkg/errors; all others return their result directly.
//
// # Alcohol
//
//	abv := calc.ABV(og, fg)                 // percent by volume
//	fg := calc.FGFromAttenuation(og, 75)    // expected final gravity
//	abw := calc.ABVToABW(abv)
//
// # Gravity and Volume
//
// NewGravity and NewVolume cover both diluting and boiling off wort.
// CorrectGravity adjusts a hydrometer reading taken away from its calibration
// temperature.
//
// # Hops
//
// IBU uses the Tinseth utilization model. BitteringWeight inverts it to find
// the weight of a bittering addition that reaches a target IBU:
//
//	w, err := calc.BitteringWeight(40, nil, 0.085, 60, volume, og)
//	if errors.Is(err, calc.ErrNegativeTarget) {
//	    // other additions already exceed the target
//	}
//
// # Packaging
//
// PrimingSugars lists the weight of each common priming sugar needed to reach
// a carbonation level, and NumBottles counts the containers a batch fills.
package calc
