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
	"fmt"

	"github.com/mchmarny/brewkit/pkg/measurement"
)

const (
	// abvFactor converts a drop in specific gravity to percent alcohol by volume.
	abvFactor = 131.25

	// EthanolDensity is the density of ethanol in g/ml.
	EthanolDensity = 0.789

	abvToABW = 0.8
	abwToABV = 1.25
)

// ABV returns the alcohol by volume, in percent, of a beer fermented from og
// down to fg.
func ABV(og, fg measurement.Density) float64 {
	return (og.SpecificGravity() - fg.SpecificGravity()) * abvFactor
}

// FG returns the final gravity that yields abv percent from og.
func FG(og measurement.Density, abv float64) measurement.Density {
	return measurement.FromSpecificGravity(og.SpecificGravity() - abv/abvFactor)
}

// FGFromAttenuation returns the final gravity reached when yeast ferments
// attenuation percent of the extract in og.
func FGFromAttenuation(og measurement.Density, attenuation float64) measurement.Density {
	sg := og.SpecificGravity()
	return measurement.FromSpecificGravity(sg - attenuation/100*(sg-1))
}

// ABVToABW converts alcohol by volume to alcohol by weight.
func ABVToABW(abv float64) float64 {
	return abv * abvToABW
}

// ABWToABV converts alcohol by weight to alcohol by volume.
func ABWToABV(abw float64) float64 {
	return abw * abwToABV
}

// ABVToABWWithDensity converts alcohol by volume to alcohol by weight for a
// beer of the given total density in g/ml.
func ABVToABWWithDensity(abv, density float64) (float64, error) {
	if err := checkDensity(density); err != nil {
		return 0, err
	}
	return abv * EthanolDensity / density, nil
}

// ABWToABVWithDensity converts alcohol by weight to alcohol by volume for a
// beer of the given total density in g/ml.
func ABWToABVWithDensity(abw, density float64) (float64, error) {
	if err := checkDensity(density); err != nil {
		return 0, err
	}
	return abw * density / EthanolDensity, nil
}

func checkDensity(density float64) error {
	if density <= 0 {
		return domainError(fmt.Sprintf("density must be positive, got %v", density),
			ErrDivisionByZero, map[string]any{"density": density})
	}
	return nil
}

// AlcoholVolume returns the volume of pure alcohol in total at abv percent.
func AlcoholVolume(total measurement.Volume, abv float64) measurement.Volume {
	return measurement.FromLiters(abv / 100 * total.Liters())
}

// AlcoholWeight returns the weight of pure alcohol in total at abv percent.
func AlcoholWeight(total measurement.Volume, abv float64) measurement.Mass {
	return measurement.FromGrams(abv / 100 * total.Milliliters() * EthanolDensity)
}
