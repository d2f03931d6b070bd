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
	"github.com/mchmarny/brewkit/pkg/measurement"
)

// HopAdditionRequest is one hop addition. AlphaAcid is in percent and Time
// is the boil time in minutes. Form is whole, plug or pellet.
type HopAdditionRequest struct {
	Weight    string  `json:"weight" yaml:"weight" validate:"required"`
	AlphaAcid float64 `json:"alpha_acid" yaml:"alpha_acid" validate:"gt=0,lte=100"`
	Time      float64 `json:"time" yaml:"time" validate:"gte=0"`
	Form      string  `json:"form,omitempty" yaml:"form,omitempty"`
}

func (r HopAdditionRequest) addition(field string) (calc.HopAddition, error) {
	w, err := parseMass(field+".weight", r.Weight)
	if err != nil {
		return calc.HopAddition{}, err
	}
	form, err := calc.ParseHopForm(r.Form)
	if err != nil {
		return calc.HopAddition{}, err
	}
	return calc.HopAddition{
		Weight:    w,
		AlphaAcid: r.AlphaAcid / 100,
		Minutes:   r.Time,
		Form:      form,
	}, nil
}

func hopAdditions(reqs []HopAdditionRequest) ([]calc.HopAddition, error) {
	out := make([]calc.HopAddition, 0, len(reqs))
	for i, r := range reqs {
		a, err := r.addition(fieldIndex("additions", i))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func wort(volume, gravity string) (measurement.Volume, measurement.Density, error) {
	v, err := parseVolume("volume", volume)
	if err != nil {
		return v, measurement.Density{}, err
	}
	g, err := parseDensity("gravity", gravity)
	if err != nil {
		return v, g, err
	}
	return v, g, nil
}

// IBURequest asks for the bitterness of hop additions to wort.
type IBURequest struct {
	Volume    string               `json:"volume" yaml:"volume" validate:"required"`
	Gravity   string               `json:"gravity" yaml:"gravity" validate:"required"`
	Additions []HopAdditionRequest `json:"additions" yaml:"additions" validate:"required,min=1,dive"`
}

// IBUResult is the total bitterness in IBU.
type IBUResult struct {
	IBU float64 `json:"ibu" yaml:"ibu"`
}

// IBU calculates the bitterness of the additions with the Tinseth model.
func (c *Calculator) IBU(req IBURequest) (*IBUResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	vol, gravity, err := wort(req.Volume, req.Gravity)
	if err != nil {
		return nil, err
	}
	if vol.Liters() <= 0 {
		return nil, fieldError("volume", req.Volume, calc.ErrDivisionByZero)
	}
	adds, err := hopAdditions(req.Additions)
	if err != nil {
		return nil, err
	}
	return &IBUResult{IBU: round(calc.IBU(adds, vol, gravity))}, nil
}

// BitteringRequest asks for the weight of a whole hop bittering addition
// that, with any other additions, reaches TargetIBU. AlphaAcid is in
// percent; a zero Time means a full boil.
type BitteringRequest struct {
	TargetIBU float64              `json:"target_ibu" yaml:"target_ibu" validate:"gte=0"`
	AlphaAcid float64              `json:"alpha_acid" yaml:"alpha_acid" validate:"gt=0,lte=100"`
	Time      float64              `json:"time,omitempty" yaml:"time,omitempty" validate:"gte=0"`
	Volume    string               `json:"volume" yaml:"volume" validate:"required"`
	Gravity   string               `json:"gravity" yaml:"gravity" validate:"required"`
	Additions []HopAdditionRequest `json:"additions,omitempty" yaml:"additions,omitempty" validate:"dive"`
}

// BitteringResult is the weight of the bittering addition.
type BitteringResult struct {
	Grams  float64 `json:"grams" yaml:"grams"`
	Ounces float64 `json:"ounces" yaml:"ounces"`
}

// Bittering calculates the weight of a bittering addition.
func (c *Calculator) Bittering(req BitteringRequest) (*BitteringResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	vol, gravity, err := wort(req.Volume, req.Gravity)
	if err != nil {
		return nil, err
	}
	others, err := hopAdditions(req.Additions)
	if err != nil {
		return nil, err
	}

	w, err := calc.BitteringWeight(req.TargetIBU, others, req.AlphaAcid/100, req.Time, vol, gravity)
	if err != nil {
		return nil, err
	}
	return &BitteringResult{
		Grams:  round(w.Grams()),
		Ounces: round(w.Ounces()),
	}, nil
}
