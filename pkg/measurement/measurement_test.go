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

package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func TestTemperatureConversions(t *testing.T) {
	tests := []struct {
		name string
		temp Temperature
		c    float64
		f    float64
		k    float64
	}{
		{"freezing", FromCelsius(0), 0, 32, 273.15},
		{"boiling", FromCelsius(100), 100, 212, 373.15},
		{"fahrenheit", FromFahrenheit(68), 20, 68, 293.15},
		{"kelvin", FromKelvin(0), -273.15, -459.67, 0},
		{"rankine", FromRankine(527.67), 20, 68, 293.15},
		{"crossover", FromFahrenheit(-40), -40, -40, 233.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.c, tt.temp.Celsius(), delta)
			assert.InDelta(t, tt.f, tt.temp.Fahrenheit(), delta)
			assert.InDelta(t, tt.k, tt.temp.Kelvin(), delta)
			assert.InDelta(t, tt.k*9/5, tt.temp.Rankine(), delta)
		})
	}
}

func TestTemperatureUnits(t *testing.T) {
	u := FromFahrenheit(59).Units()
	assert.Len(t, u, 4)
	assert.Equal(t, 15.0, u["celsius"])
	assert.Equal(t, 59.0, u["fahrenheit"])
	assert.Equal(t, 288.15, u["kelvin"])
	assert.Equal(t, 518.67, u["rankine"])
}

func TestVolumeConversions(t *testing.T) {
	assert.InDelta(t, 18.92705892, FromGallons(5).Liters(), delta)
	assert.InDelta(t, 5, FromGallons(5).Gallons(), delta)
	assert.InDelta(t, 0.33, FromMilliliters(330).Liters(), delta)
	assert.InDelta(t, 330, FromLiters(0.33).Milliliters(), delta)
	assert.InDelta(t, 1000, FromCubicMeters(1).Liters(), delta)
	assert.InDelta(t, 28.316846592, FromCubicFeet(1).Liters(), delta)
	assert.InDelta(t, 764.554857984, FromCubicYards(1).Liters(), delta)
	assert.InDelta(t, 0.016387064, FromCubicInches(1).Liters(), delta)
	assert.InDelta(t, 0.2365882365, FromCups(1).Liters(), delta)
	assert.InDelta(t, 48, FromCups(1).Teaspoons(), 1e-6)
	assert.InDelta(t, 2, FromCups(1).Pints()*4, 1e-6)
	assert.InDelta(t, 0.00005, FromDrops(1).Liters(), delta)
	assert.InDelta(t, 0.0036966911953125, FromDrams(1).Liters(), delta)
	assert.InDelta(t, 1, FromCubicCentimeters(1).Milliliters(), delta)
}

func TestMillilitersExact(t *testing.T) {
	for _, ml := range []float64{1, 100, 330, 355, 500, 750, 1000, 330000} {
		assert.Equal(t, ml, FromMilliliters(ml).Milliliters(), "ml=%v", ml)
	}
}

func TestMassConversions(t *testing.T) {
	assert.InDelta(t, 453.59237, FromPounds(1).Grams(), delta)
	assert.InDelta(t, 16, FromPounds(1).Ounces(), 1e-9)
	assert.InDelta(t, 14, FromStones(1).Pounds(), 1e-9)
	assert.InDelta(t, 7000, FromPounds(1).Grains(), 1e-6)
	assert.InDelta(t, 1000, FromKilograms(1).Grams(), delta)
	assert.InDelta(t, 1e6, FromMetricTons(1).Grams(), delta)
	assert.InDelta(t, 0.2, FromCarats(1).Grams(), delta)
	assert.InDelta(t, 1.55517384, FromPennyweights(1).Grams(), delta)
	assert.InDelta(t, 0.001, FromMilligrams(1).Grams(), delta)
	assert.InDelta(t, 1e-6, FromMicrograms(1).Grams(), 1e-15)
	assert.InDelta(t, 2.5, FromGrams(2500).Kilograms(), delta)
}

func TestDensityConversions(t *testing.T) {
	d := FromSpecificGravity(1.092)
	assert.InDelta(t, 22.0115, d.Plato(), 1e-4)
	assert.InDelta(t, 22.0141, d.Brix(), 1e-4)
	assert.Equal(t, 22.01, Truncate(d.Plato(), 2))
	assert.Equal(t, 22.01, Truncate(d.Brix(), 2))

	// the polynomial and its inverse agree to within a hundredth of a degree
	for _, p := range []float64{0, 5, 12, 22} {
		assert.InDelta(t, p, FromPlato(p).Plato(), 0.01, "plato=%v", p)
		assert.InDelta(t, p, FromBrix(p).Brix(), 0.02, "brix=%v", p)
	}

	assert.InDelta(t, 1.0, FromPlato(0).SpecificGravity(), delta)
}

func TestEnergyConversions(t *testing.T) {
	assert.InDelta(t, 4184, FromKilocalories(1).Joules(), delta)
	assert.InDelta(t, 4.184, FromKilocalories(1).Kilojoules(), delta)
	assert.InDelta(t, 1055.05585262, FromBTU(1).Joules(), delta)
	assert.InDelta(t, 3600, FromWattHours(1).Joules(), delta)
	assert.InDelta(t, 1000, FromKilowattHours(1).WattHours(), delta)
	assert.InDelta(t, 1, FromElectronVolts(1).ElectronVolts(), delta)
	assert.InDelta(t, 1, FromJoules(4184).Kilocalories(), delta)
}

func TestString(t *testing.T) {
	assert.Equal(t, "20C", FromCelsius(20).String())
	assert.Equal(t, "0.33l", FromMilliliters(330).String())
	assert.Equal(t, "28g", FromGrams(28).String())
	assert.Equal(t, "1.05", FromSpecificGravity(1.05).String())
	assert.Equal(t, "4184j", FromKilocalories(1).String())
	assert.Equal(t, "-5.5C", FromCelsius(-5.5).String())
}

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   float64
	}{
		{24.850561000000013, 4, 24.8506},
		{4.9875, 2, 4.99},
		{-4.9875, 2, -4.99},
		{2.5, 0, 3},
		{1050, 4, 1050},
		{0, 4, 0},
		{6.336000000000001, 4, 6.336},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in, tt.places), "Round(%v, %d)", tt.in, tt.places)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, 22.01, Truncate(22.0199, 2))
	assert.Equal(t, -1.5, Truncate(-1.59, 1))
}
