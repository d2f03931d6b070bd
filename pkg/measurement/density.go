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

// Density is the density of a wort or beer stored as specific gravity.
//
// Plato and Brix are derived from empirical polynomials and their inverse is
// approximate: FromPlato(p).Plato() is close to p, not equal.
type Density struct {
	sg float64
}

func FromSpecificGravity(v float64) Density { return Density{sg: v} }

// FromPlato converts degrees Plato to specific gravity.
func FromPlato(p float64) Density {
	return Density{sg: 1 + p/(258.6-(p/258.2)*227.1)}
}

// FromBrix converts degrees Brix to specific gravity using the same
// approximation as Plato.
func FromBrix(b float64) Density {
	return FromPlato(b)
}

func (d Density) SpecificGravity() float64 { return d.sg }

// Plato returns the extract in degrees Plato.
func (d Density) Plato() float64 {
	sg := d.sg
	return -616.868 + 1111.14*sg - 630.272*sg*sg + 135.997*sg*sg*sg
}

// Brix returns the extract in degrees Brix.
func (d Density) Brix() float64 {
	sg := d.sg
	return ((182.4601*sg-775.6821)*sg+1262.7794)*sg - 669.5622
}

// String renders the specific gravity as a bare number, e.g. "1.05".
func (d Density) String() string {
	return formatNumber(d.sg)
}

var densityUnits = newUnitTable("density", FromSpecificGravity,
	unit[Density]{"°p", FromPlato},
	unit[Density]{"p", FromPlato},
	unit[Density]{"°bx", FromBrix},
	unit[Density]{"bx", FromBrix},
)

// ParseDensity reads strings such as "1.050", "12°P", "12 p" or "12.5bx".
// A bare number is specific gravity.
func ParseDensity(s string) (Density, error) {
	return densityUnits.parse(s)
}
