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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mchmarny/brewkit/pkg/measurement"
)

func TestCorrectGravity(t *testing.T) {
	tests := []struct {
		sg, calibration, measured float64
		want                      float64
	}{
		{5, 2.9, 1.37, 5.00096332765874},
		{7.3, 8.1, 5.12, 7.3023498553759225},
		{7.413, 28.1, 55.1212, 7.417526019059315},
		{5, 23, 22, 5.0002323479056585},
	}

	for _, tt := range tests {
		got := CorrectGravity(sg(tt.sg),
			measurement.FromFahrenheit(tt.calibration),
			measurement.FromFahrenheit(tt.measured))
		assert.InDelta(t, tt.want, got.SpecificGravity(), 1e-9,
			"CorrectGravity(%v, %v, %v)", tt.sg, tt.calibration, tt.measured)
	}
}

func TestCorrectGravitySameTemperature(t *testing.T) {
	temp := measurement.FromCelsius(20)
	assert.InDelta(t, 1.050, CorrectGravity(sg(1.050), temp, temp).SpecificGravity(), tolerance)
}

func TestResidualCO2(t *testing.T) {
	assert.InDelta(t, 2.34661875, ResidualCO2(measurement.FromFahrenheit(15)), 1e-9)
	assert.InDelta(t, 2.4556890138750003, ResidualCO2(measurement.FromFahrenheit(12.45)), 1e-9)
	assert.InDelta(t, 0.75747195, ResidualCO2(measurement.FromCelsius(25)), 1e-9)
}
