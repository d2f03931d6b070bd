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

package calculator

import (
	"fmt"

	"github.com/mchmarny/brewkit/pkg/calc"
	"github.com/mchmarny/brewkit/pkg/defaults"
	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/measurement"
)

// CaloriesRequest asks for the energy in a serving, either from original
// and final gravity or from ABV alone. Volume is the serving size and
// defaults to defaults.ServingVolume.
type CaloriesRequest struct {
	OG     string   `json:"og,omitempty" yaml:"og,omitempty" validate:"required_with=FG"`
	FG     string   `json:"fg,omitempty" yaml:"fg,omitempty" validate:"required_with=OG"`
	ABV    *float64 `json:"abv,omitempty" yaml:"abv,omitempty" validate:"omitempty,gte=0,lte=100"`
	Volume string   `json:"volume,omitempty" yaml:"volume,omitempty"`
}

// Energy is an amount of energy in both common units.
type Energy struct {
	Kcal float64 `json:"kcal" yaml:"kcal"`
	KJ   float64 `json:"kj" yaml:"kj"`
}

func newEnergy(e measurement.Energy) *Energy {
	return &Energy{
		Kcal: round(e.Kilocalories()),
		KJ:   round(e.Kilojoules()),
	}
}

// CaloriesResult is the energy in one serving. Gravity requests fill
// Alcohol, Carbs and Total; ABV requests fill Low and High, the range of
// the matching ABV breakpoint.
type CaloriesResult struct {
	ServingML float64 `json:"serving_ml" yaml:"serving_ml"`
	Alcohol   *Energy `json:"alcohol,omitempty" yaml:"alcohol,omitempty"`
	Carbs     *Energy `json:"carbs,omitempty" yaml:"carbs,omitempty"`
	Total     *Energy `json:"total,omitempty" yaml:"total,omitempty"`
	Low       *Energy `json:"low,omitempty" yaml:"low,omitempty"`
	High      *Energy `json:"high,omitempty" yaml:"high,omitempty"`
}

// Calories estimates the energy in a serving of beer.
func (c *Calculator) Calories(req CaloriesRequest) (*CaloriesResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := exactlyOne(map[string]bool{
		"og/fg": req.OG != "",
		"abv":   req.ABV != nil,
	}); err != nil {
		return nil, err
	}

	serving, err := parseVolume("volume", orDefault(req.Volume, defaults.ServingVolume))
	if err != nil {
		return nil, err
	}

	if req.ABV != nil {
		return c.caloriesFromABV(*req.ABV, serving)
	}

	og, err := parseDensity("og", req.OG)
	if err != nil {
		return nil, err
	}
	fg, err := parseDensity("fg", req.FG)
	if err != nil {
		return nil, err
	}

	est, err := calc.EstimateCalories(og, fg, serving)
	if err != nil {
		return nil, err
	}

	return &CaloriesResult{
		ServingML: round(serving.Milliliters()),
		Alcohol:   newEnergy(est.Alcohol),
		Carbs:     newEnergy(est.Carbs),
		Total:     newEnergy(est.Total),
	}, nil
}

func (c *Calculator) caloriesFromABV(abv float64, serving measurement.Volume) (*CaloriesResult, error) {
	if c.catalog == nil {
		return nil, brewerrors.New(brewerrors.ErrCodeUnavailable, "calorie reference data is not loaded")
	}

	r, ok := c.catalog.CaloriesFor(abv)
	if !ok {
		return nil, brewerrors.NewWithContext(brewerrors.ErrCodeDomain,
			fmt.Sprintf("no calorie data for %v%% ABV", abv), map[string]any{"abv": abv})
	}

	return &CaloriesResult{
		ServingML: round(serving.Milliliters()),
		Low:       newEnergy(calc.ServingCalories(r.CaloriesLow, serving)),
		High:      newEnergy(calc.ServingCalories(r.CaloriesHigh, serving)),
	}, nil
}
