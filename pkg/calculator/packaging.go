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
	"github.com/mchmarny/brewkit/pkg/calc"
	"github.com/mchmarny/brewkit/pkg/defaults"
)

// PrimingRequest asks how much sugar carbonates a batch. Empty fields
// take the priming defaults from pkg/defaults.
type PrimingRequest struct {
	Temperature string   `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Volume      string   `json:"volume,omitempty" yaml:"volume,omitempty"`
	CO2         *float64 `json:"co2,omitempty" yaml:"co2,omitempty" validate:"omitempty,gt=0,lte=10"`
}

// SugarResult is the weight of one priming sugar.
type SugarResult struct {
	Name  string  `json:"name" yaml:"name"`
	Grams float64 `json:"grams" yaml:"grams"`
}

// PrimingResult lists every priming sugar option.
type PrimingResult struct {
	Temperature string        `json:"temperature" yaml:"temperature"`
	Volume      string        `json:"volume" yaml:"volume"`
	CO2         float64       `json:"co2" yaml:"co2"`
	ResidualCO2 float64       `json:"residual_co2" yaml:"residual_co2"`
	Sugars      []SugarResult `json:"sugars" yaml:"sugars"`
}

// Priming calculates priming sugar weights.
func (c *Calculator) Priming(req PrimingRequest) (*PrimingResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	tempInput := orDefault(req.Temperature, defaults.PrimingTemperature)
	temp, err := parseTemperature("temperature", tempInput)
	if err != nil {
		return nil, err
	}
	volInput := orDefault(req.Volume, defaults.PrimingVolume)
	vol, err := parseVolume("volume", volInput)
	if err != nil {
		return nil, err
	}
	co2 := defaults.PrimingCO2Volumes
	if req.CO2 != nil {
		co2 = *req.CO2
	}

	amounts, err := calc.PrimingSugars(temp, vol, co2)
	if err != nil {
		return nil, err
	}

	res := &PrimingResult{
		Temperature: tempInput,
		Volume:      volInput,
		CO2:         co2,
		ResidualCO2: round(calc.ResidualCO2(temp)),
		Sugars:      make([]SugarResult, 0, len(amounts)),
	}
	for _, a := range amounts {
		res.Sugars = append(res.Sugars, SugarResult{
			Name:  a.Sugar.Name,
			Grams: round(a.Weight.Grams()),
		})
	}
	return res, nil
}

// BottlesRequest asks how many containers a batch fills.
type BottlesRequest struct {
	Volume string `json:"volume" yaml:"volume" validate:"required"`
}

// Bottles counts the containers of each size needed for the batch.
func (c *Calculator) Bottles(req BottlesRequest) ([]calc.BottleCount, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	vol, err := parseVolume("volume", req.Volume)
	if err != nil {
		return nil, err
	}
	return calc.NumBottles(vol), nil
}
