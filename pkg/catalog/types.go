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

package catalog

import (
	"slices"

	"github.com/mchmarny/brewkit/pkg/measurement"
)

// Level is a qualitative rating used for yeast attenuation, flocculation
// and alcohol tolerance.
type Level string

const (
	LevelLow      Level = "Low"
	LevelMedLow   Level = "Med-Low"
	LevelMedium   Level = "Medium"
	LevelMedHigh  Level = "Med-High"
	LevelHigh     Level = "High"
	LevelVeryHigh Level = "Very High"
)

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	switch l {
	case LevelLow, LevelMedLow, LevelMedium, LevelMedHigh, LevelHigh, LevelVeryHigh:
		return true
	default:
		return false
	}
}

// BeerStyle describes the vital statistics of a beer style.
type BeerStyle struct {
	Name               string  `json:"name" yaml:"name" validate:"required"`
	OriginalGravityMin float64 `json:"original_gravity_min" yaml:"original_gravity_min" validate:"gt=0"`
	OriginalGravityMax float64 `json:"original_gravity_max" yaml:"original_gravity_max" validate:"gtefield=OriginalGravityMin"`
	FinalGravityMin    float64 `json:"final_gravity_min" yaml:"final_gravity_min" validate:"gt=0"`
	FinalGravityMax    float64 `json:"final_gravity_max" yaml:"final_gravity_max" validate:"gtefield=FinalGravityMin"`
	ABVMin             float64 `json:"abv_min" yaml:"abv_min" validate:"gte=0"`
	ABVMax             float64 `json:"abv_max" yaml:"abv_max" validate:"gtefield=ABVMin"`
	IBUMin             float64 `json:"ibu_min" yaml:"ibu_min" validate:"gte=0"`
	IBUMax             float64 `json:"ibu_max" yaml:"ibu_max" validate:"gtefield=IBUMin"`
	ColorSRMMin        float64 `json:"color_srm_min" yaml:"color_srm_min" validate:"gte=0"`
	ColorSRMMax        float64 `json:"color_srm_max" yaml:"color_srm_max" validate:"gtefield=ColorSRMMin"`
	Description        string  `json:"description" yaml:"description"`
}

// Hop describes a hop variety. Acid ranges are percentages.
type Hop struct {
	Name          string   `json:"name" yaml:"name" validate:"required"`
	AlphaAcidMin  float64  `json:"alpha_acid_min" yaml:"alpha_acid_min" validate:"gte=0,lte=100"`
	AlphaAcidMax  float64  `json:"alpha_acid_max" yaml:"alpha_acid_max" validate:"gtefield=AlphaAcidMin,lte=100"`
	BetaAcidMin   float64  `json:"beta_acid_min" yaml:"beta_acid_min" validate:"gte=0,lte=100"`
	BetaAcidMax   float64  `json:"beta_acid_max" yaml:"beta_acid_max" validate:"gtefield=BetaAcidMin,lte=100"`
	Purpose       []string `json:"purpose" yaml:"purpose" validate:"dive,required"`
	Country       string   `json:"country" yaml:"country"`
	Description   string   `json:"description" yaml:"description"`
	Substitutions []string `json:"substitutions" yaml:"substitutions" validate:"dive,required"`
}

func (h Hop) clone() Hop {
	h.Purpose = slices.Clone(h.Purpose)
	h.Substitutions = slices.Clone(h.Substitutions)
	return h
}

// Yeast describes a yeast strain. Everything but the company and name is
// optional. Temperatures are in degrees Fahrenheit.
type Yeast struct {
	Company           string   `json:"company" yaml:"company" validate:"required"`
	Name              string   `json:"name" yaml:"name" validate:"required"`
	ID                *string  `json:"id,omitempty" yaml:"id,omitempty"`
	MinAttenuation    *float64 `json:"min_attenuation,omitempty" yaml:"min_attenuation,omitempty" validate:"omitempty,gte=0,lte=100"`
	MaxAttenuation    *float64 `json:"max_attenuation,omitempty" yaml:"max_attenuation,omitempty" validate:"omitempty,gte=0,lte=100"`
	AttenuationLevel  *Level   `json:"attenuation_level,omitempty" yaml:"attenuation_level,omitempty"`
	Flocculation      *Level   `json:"flocculation,omitempty" yaml:"flocculation,omitempty"`
	MinTemp           *float64 `json:"min_temp,omitempty" yaml:"min_temp,omitempty"`
	MaxTemp           *float64 `json:"max_temp,omitempty" yaml:"max_temp,omitempty"`
	AlcTolerance      *float64 `json:"alc_tolerance,omitempty" yaml:"alc_tolerance,omitempty" validate:"omitempty,gte=0,lte=100"`
	AlcToleranceLevel *Level   `json:"alc_tolerance_level,omitempty" yaml:"alc_tolerance_level,omitempty"`
}

// MinTemperature returns the lower end of the fermentation range.
func (y Yeast) MinTemperature() (measurement.Temperature, bool) {
	if y.MinTemp == nil {
		return measurement.Temperature{}, false
	}
	return measurement.FromFahrenheit(*y.MinTemp), true
}

// MaxTemperature returns the upper end of the fermentation range.
func (y Yeast) MaxTemperature() (measurement.Temperature, bool) {
	if y.MaxTemp == nil {
		return measurement.Temperature{}, false
	}
	return measurement.FromFahrenheit(*y.MaxTemp), true
}

// YeastResult is a yeast as search results report it, with the
// fermentation range in every temperature scale.
type YeastResult struct {
	Company           string             `json:"company" yaml:"company"`
	Name              string             `json:"name" yaml:"name"`
	ID                *string            `json:"id,omitempty" yaml:"id,omitempty"`
	MinAttenuation    *float64           `json:"min_attenuation,omitempty" yaml:"min_attenuation,omitempty"`
	MaxAttenuation    *float64           `json:"max_attenuation,omitempty" yaml:"max_attenuation,omitempty"`
	AttenuationLevel  *Level             `json:"attenuation_level,omitempty" yaml:"attenuation_level,omitempty"`
	Flocculation      *Level             `json:"flocculation,omitempty" yaml:"flocculation,omitempty"`
	MinTemp           map[string]float64 `json:"min_temp,omitempty" yaml:"min_temp,omitempty"`
	MaxTemp           map[string]float64 `json:"max_temp,omitempty" yaml:"max_temp,omitempty"`
	AlcTolerance      *float64           `json:"alc_tolerance,omitempty" yaml:"alc_tolerance,omitempty"`
	AlcToleranceLevel *Level             `json:"alc_tolerance_level,omitempty" yaml:"alc_tolerance_level,omitempty"`
}

// Result converts y for output.
func (y Yeast) Result() YeastResult {
	y = y.clone()
	r := YeastResult{
		Company:           y.Company,
		Name:              y.Name,
		ID:                y.ID,
		MinAttenuation:    y.MinAttenuation,
		MaxAttenuation:    y.MaxAttenuation,
		AttenuationLevel:  y.AttenuationLevel,
		Flocculation:      y.Flocculation,
		AlcTolerance:      y.AlcTolerance,
		AlcToleranceLevel: y.AlcToleranceLevel,
	}
	if t, ok := y.MinTemperature(); ok {
		r.MinTemp = t.Units()
	}
	if t, ok := y.MaxTemperature(); ok {
		r.MaxTemp = t.Units()
	}
	return r
}

// YeastResults converts a search result list for output.
func YeastResults(yeasts []Yeast) []YeastResult {
	out := make([]YeastResult, 0, len(yeasts))
	for _, y := range yeasts {
		out = append(out, y.Result())
	}
	return out
}

// normalize drops level values that are not recognized.
func (y *Yeast) normalize() {
	for _, l := range []**Level{&y.AttenuationLevel, &y.Flocculation, &y.AlcToleranceLevel} {
		if *l != nil && !(*l).IsValid() {
			*l = nil
		}
	}
}

func (y Yeast) clone() Yeast {
	y.ID = clonePtr(y.ID)
	y.MinAttenuation = clonePtr(y.MinAttenuation)
	y.MaxAttenuation = clonePtr(y.MaxAttenuation)
	y.AttenuationLevel = clonePtr(y.AttenuationLevel)
	y.Flocculation = clonePtr(y.Flocculation)
	y.MinTemp = clonePtr(y.MinTemp)
	y.MaxTemp = clonePtr(y.MaxTemp)
	y.AlcTolerance = clonePtr(y.AlcTolerance)
	y.AlcToleranceLevel = clonePtr(y.AlcToleranceLevel)
	return y
}

// ABVCalories maps an ABV breakpoint to the approximate calorie range of
// a 12 oz serving.
type ABVCalories struct {
	ABV          float64 `json:"abv" yaml:"abv" validate:"gte=0,lte=100"`
	CaloriesLow  float64 `json:"calories_low" yaml:"calories_low" validate:"gte=0"`
	CaloriesHigh float64 `json:"calories_high" yaml:"calories_high" validate:"gtefield=CaloriesLow"`
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
