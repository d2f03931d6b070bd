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

// DilutionRequest asks what happens to wort of Gravity and Volume when it
// is diluted or boiled to TargetVolume, or how much volume reaches
// TargetGravity. Exactly one target must be set.
type DilutionRequest struct {
	Gravity       string `json:"gravity" yaml:"gravity" validate:"required"`
	Volume        string `json:"volume" yaml:"volume" validate:"required"`
	TargetVolume  string `json:"target_volume,omitempty" yaml:"target_volume,omitempty"`
	TargetGravity string `json:"target_gravity,omitempty" yaml:"target_gravity,omitempty"`
}

// DilutionResult holds either the new gravity or the new volume in liters,
// and its difference from the starting value.
type DilutionResult struct {
	Gravity    *float64 `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	VolumeL    *float64 `json:"volume_l,omitempty" yaml:"volume_l,omitempty"`
	Difference float64  `json:"difference" yaml:"difference"`
}

// Dilution calculates the gravity after changing the wort volume, or the
// volume needed to reach a gravity.
func (c *Calculator) Dilution(req DilutionRequest) (*DilutionResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := exactlyOne(map[string]bool{
		"target_volume":  req.TargetVolume != "",
		"target_gravity": req.TargetGravity != "",
	}); err != nil {
		return nil, err
	}

	cg, err := parseDensity("gravity", req.Gravity)
	if err != nil {
		return nil, err
	}
	cv, err := parseVolume("volume", req.Volume)
	if err != nil {
		return nil, err
	}

	if req.TargetVolume != "" {
		tv, err := parseVolume("target_volume", req.TargetVolume)
		if err != nil {
			return nil, err
		}
		ng, err := calc.NewGravity(cg, cv, tv)
		if err != nil {
			return nil, err
		}
		return &DilutionResult{
			Gravity:    roundPtr(ng.SpecificGravity()),
			Difference: round(ng.SpecificGravity() - cg.SpecificGravity()),
		}, nil
	}

	tg, err := parseDensity("target_gravity", req.TargetGravity)
	if err != nil {
		return nil, err
	}
	nv, err := calc.NewVolume(cg, cv, tg)
	if err != nil {
		return nil, err
	}
	return &DilutionResult{
		VolumeL:    roundPtr(nv.Liters()),
		Difference: round(nv.Liters() - cv.Liters()),
	}, nil
}

// SGCorrectionRequest is a hydrometer reading taken at MeasuredTemperature
// on a hydrometer calibrated at CalibrationTemperature.
type SGCorrectionRequest struct {
	SG                     string `json:"sg" yaml:"sg" validate:"required"`
	CalibrationTemperature string `json:"calibration_temperature" yaml:"calibration_temperature" validate:"required"`
	MeasuredTemperature    string `json:"measured_temperature" yaml:"measured_temperature" validate:"required"`
}

// SGCorrectionResult is the corrected specific gravity.
type SGCorrectionResult struct {
	SG float64 `json:"sg" yaml:"sg"`
}

// SGCorrection corrects a hydrometer reading for temperature.
func (c *Calculator) SGCorrection(req SGCorrectionRequest) (*SGCorrectionResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	sg, err := parseDensity("sg", req.SG)
	if err != nil {
		return nil, err
	}
	ct, err := parseTemperature("calibration_temperature", req.CalibrationTemperature)
	if err != nil {
		return nil, err
	}
	mt, err := parseTemperature("measured_temperature", req.MeasuredTemperature)
	if err != nil {
		return nil, err
	}
	return &SGCorrectionResult{SG: round(calc.CorrectGravity(sg, ct, mt).SpecificGravity())}, nil
}
