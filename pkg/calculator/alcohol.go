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
)

// ABVRequest asks for the alcohol content of a beer.
type ABVRequest struct {
	OG string `json:"og" yaml:"og" validate:"required"`
	FG string `json:"fg" yaml:"fg" validate:"required"`
}

// ABVResult is the alcohol by volume, in percent.
type ABVResult struct {
	ABV float64 `json:"abv" yaml:"abv"`
}

// ABV calculates alcohol by volume from original and final gravity.
func (c *Calculator) ABV(req ABVRequest) (*ABVResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	og, err := parseDensity("og", req.OG)
	if err != nil {
		return nil, err
	}
	fg, err := parseDensity("fg", req.FG)
	if err != nil {
		return nil, err
	}
	return &ABVResult{ABV: round(calc.ABV(og, fg))}, nil
}

// FGRequest asks for the final gravity expected from an original gravity
// and either a target ABV or a yeast attenuation.
type FGRequest struct {
	OG          string   `json:"og" yaml:"og" validate:"required"`
	ABV         *float64 `json:"abv,omitempty" yaml:"abv,omitempty" validate:"omitempty,gte=0,lte=100"`
	Attenuation *float64 `json:"attenuation,omitempty" yaml:"attenuation,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// FGResult is the final gravity.
type FGResult struct {
	FG float64 `json:"fg" yaml:"fg"`
}

// FG calculates final gravity.
func (c *Calculator) FG(req FGRequest) (*FGResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := exactlyOne(map[string]bool{
		"abv":         req.ABV != nil,
		"attenuation": req.Attenuation != nil,
	}); err != nil {
		return nil, err
	}

	og, err := parseDensity("og", req.OG)
	if err != nil {
		return nil, err
	}

	if req.ABV != nil {
		return &FGResult{FG: round(calc.FG(og, *req.ABV).SpecificGravity())}, nil
	}
	return &FGResult{FG: round(calc.FGFromAttenuation(og, *req.Attenuation).SpecificGravity())}, nil
}

// ABWRequest converts between alcohol by volume and alcohol by weight.
// Percent is ABV, or ABW when Reverse is set. Density is the beer density
// in g/cm³; without it the fixed 0.8 ratio is used.
type ABWRequest struct {
	Percent float64  `json:"percent" yaml:"percent" validate:"gte=0,lte=100"`
	Density *float64 `json:"density,omitempty" yaml:"density,omitempty" validate:"omitempty,gt=0"`
	Volume  string   `json:"volume,omitempty" yaml:"volume,omitempty"`
	Reverse bool     `json:"reverse,omitempty" yaml:"reverse,omitempty"`
}

// ABWResult holds the converted percentage and, when a volume was given,
// the amount of alcohol in it: milliliters for ABV, grams for ABW.
type ABWResult struct {
	ABW       *float64 `json:"abw,omitempty" yaml:"abw,omitempty"`
	ABV       *float64 `json:"abv,omitempty" yaml:"abv,omitempty"`
	AlcoholML *float64 `json:"alcohol_ml,omitempty" yaml:"alcohol_ml,omitempty"`
	AlcoholG  *float64 `json:"alcohol_g,omitempty" yaml:"alcohol_g,omitempty"`
}

// ABW converts ABV to ABW, or ABW to ABV when the request is reversed.
func (c *Calculator) ABW(req ABWRequest) (*ABWResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var converted float64
	var err error
	switch {
	case req.Reverse && req.Density != nil:
		converted, err = calc.ABWToABVWithDensity(req.Percent, *req.Density)
	case req.Reverse:
		converted = calc.ABWToABV(req.Percent)
	case req.Density != nil:
		converted, err = calc.ABVToABWWithDensity(req.Percent, *req.Density)
	default:
		converted = calc.ABVToABW(req.Percent)
	}
	if err != nil {
		return nil, err
	}

	res := &ABWResult{}
	if req.Reverse {
		res.ABV = roundPtr(converted)
	} else {
		res.ABW = roundPtr(converted)
	}

	if req.Volume == "" {
		return res, nil
	}

	total, err := parseVolume("volume", req.Volume)
	if err != nil {
		return nil, err
	}
	if req.Reverse {
		res.AlcoholML = roundPtr(calc.AlcoholVolume(total, converted).Milliliters())
	} else {
		res.AlcoholG = roundPtr(calc.AlcoholWeight(total, req.Percent).Grams())
	}
	return res, nil
}
