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

// Sugar is a fermentable used to prime beer at bottling.
type Sugar struct {
	Name string
	// Yield is the fermentability relative to table sugar.
	Yield float64
}

// SugarAmount is the weight of one sugar needed for a priming target.
type SugarAmount struct {
	Sugar  Sugar
	Weight measurement.Mass
}

var sugars = []Sugar{
	{"Table Sugar (sucrose)", 1.0},
	{"Corn Sugar (dextrose)", 0.91},
	{"DME - All Varieties", 0.68},
	{"DME - Laaglander", 0.5},
	{"Turbinado", 1.0},
	{"Demarara", 1.0},
	{"Corn Syrup", 0.69},
	{"Brown Sugar", 0.89},
	{"Molasses", 0.71},
	{"Maple Syrup", 0.77},
	{"Sorghum Syrup", 0.69},
	{"Honey", 0.74},
	{"Belgian Candy Syrup", 0.63},
	{"Belgian Candy Sugar", 0.75},
	{"Invert Sugar Syrup", 0.91},
	{"Black Treacle", 0.87},
	{"Rice Solids", 0.79},
}

// Sugars returns the priming sugars in the order PrimingSugars reports them.
func Sugars() []Sugar {
	out := make([]Sugar, len(sugars))
	copy(out, sugars)
	return out
}

// PrimingSugars returns how much of each priming sugar carbonates beer
// fermented at temperature t to targetCO2 volumes.
func PrimingSugars(t measurement.Temperature, beer measurement.Volume, targetCO2 float64) ([]SugarAmount, error) {
	residual := ResidualCO2(t)
	sucrose := ((targetCO2*2 - residual*2) * 2) * beer.Liters()
	if sucrose < 0 {
		return nil, domainError(
			fmt.Sprintf("beer already holds %.2f volumes of CO2, above the %.2f target", residual, targetCO2),
			nil, map[string]any{
				"temperature": t.String(),
				"residualCO2": residual,
				"targetCO2":   targetCO2,
			})
	}

	out := make([]SugarAmount, 0, len(sugars))
	for _, s := range sugars {
		out = append(out, SugarAmount{
			Sugar:  s,
			Weight: measurement.FromGrams(sucrose / s.Yield),
		})
	}
	return out, nil
}
