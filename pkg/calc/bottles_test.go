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
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/brewkit/pkg/measurement"
)

func TestNumBottles(t *testing.T) {
	tests := []struct {
		name   string
		volume measurement.Volume
		want   []int
	}{
		{"single bottle", measurement.FromMilliliters(330), []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{"large batch", measurement.FromLiters(330), []int{1000, 930, 734, 660, 581, 508, 440, 349, 175, 88, 66}},
		{"empty", measurement.FromLiters(0), []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"exact fit", measurement.FromLiters(5), []int{16, 15, 12, 10, 9, 8, 7, 6, 3, 2, 1}},
		{"just over one bottle", measurement.FromMilliliters(330.0000001), []int{2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumBottles(tt.volume)
			require.Len(t, got, len(bottles))
			for i, c := range got {
				assert.Equal(t, bottles[i].Name, c.Bottle)
				assert.Equal(t, tt.want[i], c.Count, c.Bottle)
			}
		})
	}
}

func TestNumBottlesHoldsVolume(t *testing.T) {
	for _, l := range []float64{0.1, 1, 4.7, 19, 23.5, 50} {
		v := measurement.FromLiters(l)
		for i, c := range NumBottles(v) {
			capacity := float64(c.Count) * bottles[i].Milliliters
			assert.GreaterOrEqual(t, capacity, v.Milliliters()-1e-6)
			assert.Less(t, capacity-bottles[i].Milliliters, v.Milliliters())
		}
	}
}

func TestBottlesOrder(t *testing.T) {
	b := Bottles()
	require.Len(t, b, 11)
	assert.Equal(t, "330ml bottle", b[0].Name)
	assert.Equal(t, "5 liter mini keg", b[10].Name)
}

func TestNumBottlesNonDecreasing(t *testing.T) {
	prev := NumBottles(measurement.FromLiters(0))
	for ml := 250.0; ml <= 40000; ml += 250 {
		next := NumBottles(measurement.FromMilliliters(ml))
		require.Len(t, next, len(prev))
		for i := range next {
			assert.GreaterOrEqual(t, next[i].Count, prev[i].Count, "%s at %vml", next[i].Bottle, ml)
		}
		prev = next
	}
}
