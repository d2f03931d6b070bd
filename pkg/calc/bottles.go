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

// Bottle is a container size used when packaging a batch.
type Bottle struct {
	Name        string
	Milliliters float64
}

// BottleCount is the number of one container needed for a batch.
type BottleCount struct {
	Bottle string `json:"size" yaml:"size"`
	Count  int    `json:"num" yaml:"num"`
}

var bottles = []Bottle{
	{"330ml bottle", 330},
	{"Twelve ounce bottle", 355},
	{"Groish bottle", 450},
	{"Half liter bottle", 500},
	{"Pint", 568},
	{"Graft bottle", 650},
	{"Wine bottle", 750},
	{"Grenade jug", 946},
	{"Growler jug", 1893},
	{"Gallon jug", 3785},
	{"5 liter mini keg", 5000},
}

// Bottles returns the container sizes in the order NumBottles reports them.
func Bottles() []Bottle {
	out := make([]Bottle, len(bottles))
	copy(out, bottles)
	return out
}

// NumBottles returns how many of each container it takes to hold total.
// Each count is ceil(total/size), so any overflow takes one more
// container. A non-positive total needs no containers.
func NumBottles(total measurement.Volume) []BottleCount {
	ml := total.Milliliters()
	out := make([]BottleCount, 0, len(bottles))
	for _, b := range bottles {
		n := 0
		if ml > 0 {
			n = int(math.Ceil(ml / b.Milliliters))
		}
		out = append(out, BottleCount{Bottle: b.Name, Count: n})
	}
	return out
}
