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
	"github.com/stretchr/testify/require"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
)

func TestParseVolume(t *testing.T) {
	tests := []struct {
		in     string
		liters float64
	}{
		{"", 0},
		{"   ", 0},
		{"1.5", 1.5},
		{"5 L", 5},
		{"5l", 5},
		{"330ml", 0.33},
		{"330 ML", 0.33},
		{"123 cm3", 0.123},
		{"2 gal", 2 * litersPerGallon},
		{"2GAL", 2 * litersPerGallon},
		{"1 cup", litersPerCup},
		{"3 tsp", 3 * litersPerTeaspoon},
		{"123 P", 123 * litersPerPint},
		{"1 m3", 1000},
		{"1ft3", litersPerCubicFoot},
		{"1 yd3", litersPerCubicYard},
		{"1 in3", litersPerCubicInch},
		{"10μl", 10 * litersPerDrop},
		{"2 dr", 2 * litersPerDram},
		{"3ʒ", 3 * litersPerPint},
		{"  25 l  ", 25},
		{"-2l", -2},
		{"1e3ml", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVolume(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.liters, v.Liters(), delta)
		})
	}
}

func TestParseVolumeKeepsUnit(t *testing.T) {
	v, err := ParseVolume("123 cm3")
	require.NoError(t, err)
	assert.InDelta(t, 123, v.CubicCentimeters(), delta)

	v, err = ParseVolume("123 P")
	require.NoError(t, err)
	assert.InDelta(t, 123, v.Pints(), delta)

	v, err = ParseVolume("3ʒ")
	require.NoError(t, err)
	assert.InDelta(t, 3, v.Pints(), delta)
	assert.NotEqual(t, FromDrams(3), v)
}

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		in      string
		celsius float64
	}{
		{"", 0},
		{"20", 20},
		{"68F", 20},
		{"68 f", 20},
		{"20C", 20},
		{"20 °C", 20},
		{"68°F", 20},
		{"-5c", -5},
		{"293.15K", 20},
		{"527.67R", 20},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseTemperature(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.celsius, v.Celsius(), delta)
		})
	}
}

func TestParseMass(t *testing.T) {
	tests := []struct {
		in    string
		grams float64
	}{
		{"", 0},
		{"28", 28},
		{"28g", 28},
		{"2kg", 2000},
		{"2 KG", 2000},
		{"5mg", 0.005},
		{"10 ug", 1e-5},
		{"10μg", 1e-5},
		{"2ct", 0.4},
		{"123T", 123e6},
		{"1 gr", gramsPerGrain},
		{"1dwt", gramsPerPennyweight},
		{"1 oz", gramsPerOunce},
		{"1st", gramsPerStone},
		{"2 lbs", 2 * gramsPerPound},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseMass(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.grams, v.Grams(), 1e-9)
		})
	}
}

func TestParseDensity(t *testing.T) {
	tests := []struct {
		in    string
		plato float64
	}{
		{"22°P", 22},
		{"22 P", 22},
		{"22p", 22},
		{"22 °bX", 22},
		{"22bx", 22},
		{"1.092", 22.0115},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseDensity(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.plato, v.Plato(), 0.01)
		})
	}

	v, err := ParseDensity("")
	require.NoError(t, err)
	assert.Zero(t, v.SpecificGravity())

	v, err = ParseDensity("1.050")
	require.NoError(t, err)
	assert.Equal(t, 1.05, v.SpecificGravity())
}

func TestParseEnergy(t *testing.T) {
	tests := []struct {
		in     string
		joules float64
	}{
		{"", 0},
		{"10", 10 * joulesPerKilocalorie},
		{"1.5", 1.5 * joulesPerKilocalorie},
		{"10j", 10},
		{"1kcal", 4184},
		{"1 KCAL", 4184},
		{"1 btu", joulesPerBTU},
		{"1wh", 3600},
		{"1kwh", 3.6e6},
		{"1ev", joulesPerElectronVolt},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseEnergy(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.joules, v.Joules(), delta)
		})
	}
}

func TestParseEnergyBareNumberIsKilocalories(t *testing.T) {
	v, err := ParseEnergy("123")
	require.NoError(t, err)
	assert.InDelta(t, 123, v.Kilocalories(), delta)

	v, err = ParseEnergy("  ")
	require.NoError(t, err)
	assert.Zero(t, v.Joules())
}

func TestParseInvalid(t *testing.T) {
	parsers := map[string]func(string) error{
		"temperature": func(s string) error { _, err := ParseTemperature(s); return err },
		"volume":      func(s string) error { _, err := ParseVolume(s); return err },
		"mass":        func(s string) error { _, err := ParseMass(s); return err },
		"density":     func(s string) error { _, err := ParseDensity(s); return err },
		"energy":      func(s string) error { _, err := ParseEnergy(s); return err },
	}

	inputs := []string{"abc", "1.2.3", "nan", "inf", "--5", "five"}

	for name, parse := range parsers {
		for _, in := range inputs {
			t.Run(name+"/"+in, func(t *testing.T) {
				err := parse(in)
				require.Error(t, err)
				assert.True(t, brewerrors.IsInvalidInput(err))
			})
		}
	}
}

func TestParseSuffixWithoutNumber(t *testing.T) {
	_, err := ParseVolume("ml")
	require.Error(t, err)
	assert.True(t, brewerrors.IsInvalidInput(err))

	_, err = ParseMass(" kg")
	require.Error(t, err)
}

func TestParseRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 1.05, 20.5, 330, 1e-5, 123456.789, 3.785411784}

	for _, v := range values {
		temp := FromCelsius(v)
		gotTemp, err := ParseTemperature(temp.String())
		require.NoError(t, err)
		assert.Equal(t, temp, gotTemp)

		vol := FromLiters(v)
		gotVol, err := ParseVolume(vol.String())
		require.NoError(t, err)
		assert.Equal(t, vol, gotVol)

		mass := FromGrams(v)
		gotMass, err := ParseMass(mass.String())
		require.NoError(t, err)
		assert.Equal(t, mass, gotMass)

		dens := FromSpecificGravity(v)
		gotDens, err := ParseDensity(dens.String())
		require.NoError(t, err)
		assert.Equal(t, dens, gotDens)

		energy := FromJoules(v)
		gotEnergy, err := ParseEnergy(energy.String())
		require.NoError(t, err)
		assert.Equal(t, energy, gotEnergy)
	}
}

func BenchmarkParseVolume(b *testing.B) {
	inputs := []string{"25l", "5 gal", "330ml", "123 cm3", "2 cup"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseVolume(inputs[i%len(inputs)]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMass(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseMass("28.5 oz"); err != nil {
			b.Fatal(err)
		}
	}
}
