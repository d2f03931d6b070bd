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

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/measurement"
)

func TestPrimingSugars(t *testing.T) {
	want := []struct {
		name  string
		grams float64
	}{
		{"Table Sugar (sucrose)", 24.850561000000013},
		{"Corn Sugar (dextrose)", 27.308308791208802},
		{"DME - All Varieties", 36.54494264705884},
		{"DME - Laaglander", 49.701122000000026},
		{"Turbinado", 24.850561},
		{"Demarara", 24.850561},
		{"Corn Syrup", 36.015305797101476},
		{"Brown Sugar", 27.92197865168541},
		{"Molasses", 35.00079014084509},
		{"Maple Syrup", 32.27345584415586},
		{"Sorghum Syrup", 36.015305797101476},
		{"Honey", 33.5818391891892},
		{"Belgian Candy Syrup", 39.44533492063494},
		{"Belgian Candy Sugar", 33.13408133333335},
		{"Invert Sugar Syrup", 27.308308791208802},
		{"Black Treacle", 28.563863218390818},
		{"Rice Solids", 31.45640632911394},
	}

	got, err := PrimingSugars(measurement.FromFahrenheit(77), measurement.FromLiters(5), 2.0)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i, w := range want {
		assert.Equal(t, w.name, got[i].Sugar.Name)
		assert.InDelta(t, w.grams, got[i].Weight.Grams(), 1e-9, w.name)
	}
}

func TestPrimingSugarsScaleWithVolume(t *testing.T) {
	temp := measurement.FromCelsius(20)
	one, err := PrimingSugars(temp, measurement.FromLiters(1), 2.4)
	require.NoError(t, err)
	ten, err := PrimingSugars(temp, measurement.FromLiters(10), 2.4)
	require.NoError(t, err)

	for i := range one {
		assert.InDelta(t, one[i].Weight.Grams()*10, ten[i].Weight.Grams(), 1e-9)
	}
}

func TestPrimingSugarsOvercarbonated(t *testing.T) {
	// cold beer already holds more CO2 than the target
	_, err := PrimingSugars(measurement.FromFahrenheit(32), measurement.FromLiters(20), 1.0)
	require.Error(t, err)
	assert.True(t, brewerrors.IsDomain(err))
}

func TestSugarsIsCopy(t *testing.T) {
	s := Sugars()
	require.Len(t, s, 17)
	s[0].Name = "changed"
	assert.Equal(t, "Table Sugar (sucrose)", Sugars()[0].Name)
}

func TestPrimingSugarsFollowYield(t *testing.T) {
	amounts, err := PrimingSugars(measurement.FromCelsius(18), measurement.FromLiters(19), 2.4)
	require.NoError(t, err)

	for _, a := range amounts {
		for _, b := range amounts {
			if a.Sugar.Yield > b.Sugar.Yield {
				assert.Less(t, a.Weight.Grams(), b.Weight.Grams(), "%s vs %s", a.Sugar.Name, b.Sugar.Name)
			}
		}
	}
}
