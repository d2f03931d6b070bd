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
	"math"
	"strings"

	"github.com/mchmarny/brewkit/pkg/defaults"
	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/measurement"
)

// HopForm is the physical form of a hop addition.
type HopForm int

const (
	HopWhole HopForm = iota
	HopPlug
	HopPellet
)

var hopFormNames = map[HopForm]string{
	HopWhole:  "whole",
	HopPlug:   "plug",
	HopPellet: "pellet",
}

func (f HopForm) String() string {
	if n, ok := hopFormNames[f]; ok {
		return n
	}
	return fmt.Sprintf("HopForm(%d)", int(f))
}

// utilizationFactor is the utilization of the form relative to whole hops.
func (f HopForm) utilizationFactor() float64 {
	if f == HopPellet {
		return 1.1
	}
	return 1.0
}

// ParseHopForm reads "whole", "plug" or "pellet", case-insensitively.
// An empty string is whole hops.
func ParseHopForm(s string) (HopForm, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return HopWhole, nil
	}
	for f, n := range hopFormNames {
		if n == v || n+"s" == v {
			return f, nil
		}
	}
	return HopWhole, brewerrors.NewWithContext(brewerrors.ErrCodeInvalidInput,
		fmt.Sprintf("invalid hop form %q", s), map[string]any{
			"input":   s,
			"allowed": []string{"whole", "plug", "pellet"},
		})
}

// HopAddition is one hop addition to the boil.
type HopAddition struct {
	Weight measurement.Mass
	// AlphaAcid is a fraction: 0.085 for an 8.5% alpha acid hop.
	AlphaAcid float64
	Minutes   float64
	Form      HopForm
}

// Utilization returns the Tinseth alpha acid utilization of a hop boiled for
// minutes in wort of the given gravity.
func Utilization(gravity measurement.Density, minutes float64) float64 {
	bigness := 1.65 * math.Pow(0.000125, gravity.SpecificGravity()-1)
	boilTime := (1 - math.Exp(-0.04*minutes)) / 4.15
	return bigness * boilTime
}

// AdditionIBU returns the IBU one addition contributes to volume of wort.
func AdditionIBU(a HopAddition, volume measurement.Volume, gravity measurement.Density) float64 {
	mgPerLiter := a.AlphaAcid * a.Weight.Grams() * 1000 / volume.Liters()
	return mgPerLiter * Utilization(gravity, a.Minutes) * a.Form.utilizationFactor()
}

// IBU returns the total bitterness of the additions.
func IBU(additions []HopAddition, volume measurement.Volume, gravity measurement.Density) float64 {
	var total float64
	for _, a := range additions {
		total += AdditionIBU(a, volume, gravity)
	}
	return total
}

// BitteringWeight returns the weight of a whole hop bittering addition with
// the given alpha acid fraction that, boiled for minutes alongside others,
// brings the wort to the target IBU. A non-positive minutes means
// defaults.BitteringBoilMinutes.
func BitteringWeight(target float64, others []HopAddition, alphaAcid, minutes float64,
	volume measurement.Volume, gravity measurement.Density) (measurement.Mass, error) {
	if volume.Liters() <= 0 {
		return measurement.Mass{}, domainError("volume must be positive",
			ErrDivisionByZero, map[string]any{"volume": volume.String()})
	}
	if alphaAcid <= 0 {
		return measurement.Mass{}, domainError("alpha acid must be positive",
			ErrDivisionByZero, map[string]any{"alphaAcid": alphaAcid})
	}
	if minutes <= 0 {
		minutes = defaults.BitteringBoilMinutes
	}

	remaining := target - IBU(others, volume, gravity)
	if remaining < 0 {
		return measurement.Mass{}, domainError(
			fmt.Sprintf("other additions exceed the target by %.2f IBU", -remaining),
			ErrNegativeTarget, map[string]any{
				"targetIBU":    target,
				"remainingIBU": remaining,
			})
	}

	grams := remaining * volume.Liters() / (Utilization(gravity, minutes) * alphaAcid) / 1000
	return measurement.FromGrams(grams), nil
}
