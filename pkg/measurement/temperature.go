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

const absoluteZeroCelsius = 273.15

// Temperature is a temperature stored in degrees Celsius.
type Temperature struct {
	c float64
}

func FromCelsius(v float64) Temperature    { return Temperature{c: v} }
func FromFahrenheit(v float64) Temperature { return Temperature{c: (v - 32) * 5 / 9} }
func FromKelvin(v float64) Temperature     { return Temperature{c: v - absoluteZeroCelsius} }
func FromRankine(v float64) Temperature    { return FromKelvin(v * 5 / 9) }

func (t Temperature) Celsius() float64    { return t.c }
func (t Temperature) Fahrenheit() float64 { return t.c*9/5 + 32 }
func (t Temperature) Kelvin() float64     { return t.c + absoluteZeroCelsius }
func (t Temperature) Rankine() float64    { return t.Kelvin() * 9 / 5 }

// Units returns the temperature in every supported scale, keyed by scale
// name and rounded to four places.
func (t Temperature) Units() map[string]float64 {
	return map[string]float64{
		"celsius":    Round(t.Celsius(), 4),
		"fahrenheit": Round(t.Fahrenheit(), 4),
		"kelvin":     Round(t.Kelvin(), 4),
		"rankine":    Round(t.Rankine(), 4),
	}
}

// String renders the temperature in Celsius, e.g. "20C".
func (t Temperature) String() string {
	return formatNumber(t.c) + "C"
}

var temperatureUnits = newUnitTable("temperature", FromCelsius,
	unit[Temperature]{"f", FromFahrenheit},
	unit[Temperature]{"c", FromCelsius},
	unit[Temperature]{"k", FromKelvin},
	unit[Temperature]{"r", FromRankine},
	unit[Temperature]{"°f", FromFahrenheit},
	unit[Temperature]{"°c", FromCelsius},
)

// ParseTemperature reads strings such as "68F", "20 c", "293.15K" or "528R".
// A bare number is Celsius.
func ParseTemperature(s string) (Temperature, error) {
	return temperatureUnits.parse(s)
}
