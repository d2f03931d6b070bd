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

// Grams per unit.
const (
	gramsPerGrain       = 0.06479891
	gramsPerPennyweight = 1.55517384
	gramsPerOunce       = 28.349523125
	gramsPerPound       = 453.59237
	gramsPerStone       = 6350.29318
	gramsPerCarat       = 0.2
	gramsPerKilogram    = 1000.0
	gramsPerTon         = 1e6
	milligramsPerGram   = 1000.0
	microgramsPerGram   = 1e6
)

// Mass is a mass stored in grams.
type Mass struct {
	g float64
}

func FromGrams(v float64) Mass        { return Mass{g: v} }
func FromMicrograms(v float64) Mass   { return Mass{g: v / microgramsPerGram} }
func FromMilligrams(v float64) Mass   { return Mass{g: v / milligramsPerGram} }
func FromKilograms(v float64) Mass    { return Mass{g: v * gramsPerKilogram} }
func FromMetricTons(v float64) Mass   { return Mass{g: v * gramsPerTon} }
func FromCarats(v float64) Mass       { return Mass{g: v * gramsPerCarat} }
func FromGrains(v float64) Mass       { return Mass{g: v * gramsPerGrain} }
func FromPennyweights(v float64) Mass { return Mass{g: v * gramsPerPennyweight} }
func FromOunces(v float64) Mass       { return Mass{g: v * gramsPerOunce} }
func FromPounds(v float64) Mass       { return Mass{g: v * gramsPerPound} }
func FromStones(v float64) Mass       { return Mass{g: v * gramsPerStone} }

func (m Mass) Grams() float64        { return m.g }
func (m Mass) Micrograms() float64   { return m.g * microgramsPerGram }
func (m Mass) Milligrams() float64   { return m.g * milligramsPerGram }
func (m Mass) Kilograms() float64    { return m.g / gramsPerKilogram }
func (m Mass) MetricTons() float64   { return m.g / gramsPerTon }
func (m Mass) Carats() float64       { return m.g / gramsPerCarat }
func (m Mass) Grains() float64       { return m.g / gramsPerGrain }
func (m Mass) Pennyweights() float64 { return m.g / gramsPerPennyweight }
func (m Mass) Ounces() float64       { return m.g / gramsPerOunce }
func (m Mass) Pounds() float64       { return m.g / gramsPerPound }
func (m Mass) Stones() float64       { return m.g / gramsPerStone }

// String renders the mass in grams, e.g. "28.35g".
func (m Mass) String() string {
	return formatNumber(m.g) + "g"
}

var massUnits = newUnitTable("mass", FromGrams,
	unit[Mass]{"ug", FromMicrograms},
	unit[Mass]{"μg", FromMicrograms},
	unit[Mass]{"mg", FromMilligrams},
	unit[Mass]{"ct", FromCarats},
	unit[Mass]{"g", FromGrams},
	unit[Mass]{"kg", FromKilograms},
	unit[Mass]{"t", FromMetricTons},
	unit[Mass]{"gr", FromGrains},
	unit[Mass]{"dwt", FromPennyweights},
	unit[Mass]{"oz", FromOunces},
	unit[Mass]{"st", FromStones},
	unit[Mass]{"lbs", FromPounds},
)

// ParseMass reads strings such as "28g", "1 oz", "2.5kg" or "1lbs".
// "t" is a metric ton and "gr" is a grain. A bare number is grams.
func ParseMass(s string) (Mass, error) {
	return massUnits.parse(s)
}
