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

// Joules per unit.
const (
	joulesPerKilocalorie  = 4184.0
	joulesPerKilojoule    = 1000.0
	joulesPerBTU          = 1055.05585262
	joulesPerWattHour     = 3600.0
	joulesPerKilowattHour = 3.6e6
	joulesPerElectronVolt = 1.602176634e-19
)

// Energy is an amount of energy stored in joules.
type Energy struct {
	j float64
}

func FromJoules(v float64) Energy        { return Energy{j: v} }
func FromKilojoules(v float64) Energy    { return Energy{j: v * joulesPerKilojoule} }
func FromKilocalories(v float64) Energy  { return Energy{j: v * joulesPerKilocalorie} }
func FromBTU(v float64) Energy           { return Energy{j: v * joulesPerBTU} }
func FromWattHours(v float64) Energy     { return Energy{j: v * joulesPerWattHour} }
func FromKilowattHours(v float64) Energy { return Energy{j: v * joulesPerKilowattHour} }
func FromElectronVolts(v float64) Energy { return Energy{j: v * joulesPerElectronVolt} }

func (e Energy) Joules() float64        { return e.j }
func (e Energy) Kilojoules() float64    { return e.j / joulesPerKilojoule }
func (e Energy) Kilocalories() float64  { return e.j / joulesPerKilocalorie }
func (e Energy) BTU() float64           { return e.j / joulesPerBTU }
func (e Energy) WattHours() float64     { return e.j / joulesPerWattHour }
func (e Energy) KilowattHours() float64 { return e.j / joulesPerKilowattHour }
func (e Energy) ElectronVolts() float64 { return e.j / joulesPerElectronVolt }

// String renders the energy in joules, e.g. "4184j".
func (e Energy) String() string {
	return formatNumber(e.j) + "j"
}

var energyUnits = newUnitTable("energy", FromKilocalories,
	unit[Energy]{"kcal", FromKilocalories},
	unit[Energy]{"btu", FromBTU},
	unit[Energy]{"ev", FromElectronVolts},
	unit[Energy]{"wh", FromWattHours},
	unit[Energy]{"kwh", FromKilowattHours},
	unit[Energy]{"j", FromJoules},
)

// ParseEnergy reads strings such as "150kcal", "1 btu" or "3.6kwh".
// A bare number is kilocalories.
func ParseEnergy(s string) (Energy, error) {
	return energyUnits.parse(s)
}
