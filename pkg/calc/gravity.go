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
	"math"

	"github.com/mchmarny/brewkit/pkg/measurement"
)

// hydrometerDensity is the relative density of water at t °F used to correct
// hydrometer readings.
func hydrometerDensity(t float64) float64 {
	return 1.00130346 - 0.000134722124*t + 0.00000204052596*t*t - 0.00000000232820948*t*t*t
}

// CorrectGravity adjusts a hydrometer reading taken at the measured temperature
// for a hydrometer calibrated at the calibration temperature.
func CorrectGravity(sg measurement.Density, calibration, measured measurement.Temperature) measurement.Density {
	ratio := hydrometerDensity(measured.Fahrenheit()) / hydrometerDensity(calibration.Fahrenheit())
	return measurement.FromSpecificGravity(sg.SpecificGravity() * ratio)
}

// ResidualCO2 returns the volumes of CO2 left in beer after fermenting at t.
func ResidualCO2(t measurement.Temperature) float64 {
	f := t.Fahrenheit()
	return 3.0378 - 0.050062*f + 0.00026555*math.Pow(f, 2)
}
