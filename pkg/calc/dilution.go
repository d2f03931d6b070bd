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

package calc

import (
	"github.com/mchmarny/brewkit/pkg/measurement"
)

// NewGravity returns the gravity of wort at current gravity cg and volume cv
// once it is diluted or boiled to the target volume tv.
func NewGravity(cg measurement.Density, cv, tv measurement.Volume) (measurement.Density, error) {
	if tv.Liters() == 0 {
		return measurement.Density{}, domainError("target volume must not be zero",
			ErrDivisionByZero, map[string]any{"targetVolume": tv.String()})
	}
	sg := (cg.SpecificGravity()-1)*(cv.Liters()/tv.Liters()) + 1
	return measurement.FromSpecificGravity(sg), nil
}

// NewVolume returns the volume wort at current gravity cg and volume cv must be
// diluted or boiled to in order to reach the target gravity tg.
func NewVolume(cg measurement.Density, cv measurement.Volume, tg measurement.Density) (measurement.Volume, error) {
	if tg.SpecificGravity() == 1 {
		return measurement.Volume{}, domainError("target gravity must not be 1.000",
			ErrDivisionByZero, map[string]any{"targetGravity": tg.String()})
	}
	l := cv.Liters() * (cg.SpecificGravity() - 1) / (tg.SpecificGravity() - 1)
	return measurement.FromLiters(l), nil
}
