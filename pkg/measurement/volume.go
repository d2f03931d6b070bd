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

// Liters per unit.
const (
	litersPerGallon     = 3.785411784
	litersPerCup        = 0.2365882365
	litersPerTeaspoon   = 0.00492892159375
	litersPerPint       = 0.473176473
	litersPerDram       = 0.0036966911953125
	litersPerDrop       = 0.00005
	litersPerCubicFoot  = 28.316846592
	litersPerCubicYard  = 764.554857984
	litersPerCubicInch  = 0.016387064
	litersPerCubicMeter = 1000.0
	millilitersPerLiter = 1000.0
)

// Volume is a volume stored in liters.
type Volume struct {
	l float64
}

func FromLiters(v float64) Volume           { return Volume{l: v} }
func FromMilliliters(v float64) Volume      { return Volume{l: v / millilitersPerLiter} }
func FromCubicCentimeters(v float64) Volume { return FromMilliliters(v) }
func FromCubicMeters(v float64) Volume      { return Volume{l: v * litersPerCubicMeter} }
func FromCubicFeet(v float64) Volume        { return Volume{l: v * litersPerCubicFoot} }
func FromCubicYards(v float64) Volume       { return Volume{l: v * litersPerCubicYard} }
func FromCubicInches(v float64) Volume      { return Volume{l: v * litersPerCubicInch} }
func FromGallons(v float64) Volume          { return Volume{l: v * litersPerGallon} }
func FromCups(v float64) Volume             { return Volume{l: v * litersPerCup} }
func FromTeaspoons(v float64) Volume        { return Volume{l: v * litersPerTeaspoon} }
func FromPints(v float64) Volume            { return Volume{l: v * litersPerPint} }
func FromDrams(v float64) Volume            { return Volume{l: v * litersPerDram} }
func FromDrops(v float64) Volume            { return Volume{l: v * litersPerDrop} }

func (v Volume) Liters() float64           { return v.l }
func (v Volume) Milliliters() float64      { return v.l * millilitersPerLiter }
func (v Volume) CubicCentimeters() float64 { return v.Milliliters() }
func (v Volume) CubicMeters() float64      { return v.l / litersPerCubicMeter }
func (v Volume) CubicFeet() float64        { return v.l / litersPerCubicFoot }
func (v Volume) CubicYards() float64       { return v.l / litersPerCubicYard }
func (v Volume) CubicInches() float64      { return v.l / litersPerCubicInch }
func (v Volume) Gallons() float64          { return v.l / litersPerGallon }
func (v Volume) Cups() float64             { return v.l / litersPerCup }
func (v Volume) Teaspoons() float64        { return v.l / litersPerTeaspoon }
func (v Volume) Pints() float64            { return v.l / litersPerPint }
func (v Volume) Drams() float64            { return v.l / litersPerDram }
func (v Volume) Drops() float64            { return v.l / litersPerDrop }

// String renders the volume in liters, e.g. "18.9l".
func (v Volume) String() string {
	return formatNumber(v.l) + "l"
}

var volumeUnits = newUnitTable("volume", FromLiters,
	unit[Volume]{"cm3", FromCubicCentimeters},
	unit[Volume]{"ft3", FromCubicFeet},
	unit[Volume]{"yd3", FromCubicYards},
	unit[Volume]{"in3", FromCubicInches},
	unit[Volume]{"gal", FromGallons},
	unit[Volume]{"cup", FromCups},
	unit[Volume]{"tsp", FromTeaspoons},
	unit[Volume]{"ml", FromMilliliters},
	unit[Volume]{"m3", FromCubicMeters},
	unit[Volume]{"μl", FromDrops},
	unit[Volume]{"dr", FromDrams},
	unit[Volume]{"l", FromLiters},
	unit[Volume]{"p", FromPints},
	unit[Volume]{"ʒ", FromPints},
)

// ParseVolume reads strings such as "25l", "5 gal", "330ml" or "2 cup".
// "p" and "ʒ" are pints, "dr" is drams and "μl" is drops. A bare number
// is liters.
func ParseVolume(s string) (Volume, error) {
	return volumeUnits.parse(s)
}
