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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/measurement"
)

func centennial(form HopForm) HopAddition {
	return HopAddition{
		Weight:    measurement.FromGrams(7),
		AlphaAcid: 0.085,
		Minutes:   15,
		Form:      form,
	}
}

func TestUtilization(t *testing.T) {
	// Tinseth table, 1.050 wort
	assert.InDelta(t, 0.0, Utilization(sg(1.050), 0), 1e-9)
	assert.InDelta(t, 0.2307, Utilization(sg(1.050), 60), 0.001)
	assert.InDelta(t, 0.1773, Utilization(sg(1.050), 30), 0.001)

	// higher gravity lowers utilization
	assert.Less(t, Utilization(sg(1.080), 60), Utilization(sg(1.040), 60))
}

func TestAdditionIBU(t *testing.T) {
	vol, og := measurement.FromLiters(22), sg(1.058)
	assert.InDelta(t, 2.88, AdditionIBU(centennial(HopWhole), vol, og), 0.01)
	assert.InDelta(t, AdditionIBU(centennial(HopWhole), vol, og), AdditionIBU(centennial(HopPlug), vol, og), tolerance)
	assert.InDelta(t, AdditionIBU(centennial(HopWhole), vol, og)*1.1, AdditionIBU(centennial(HopPellet), vol, og), tolerance)
}

func TestIBU(t *testing.T) {
	vol, og := measurement.FromLiters(22), sg(1.058)

	tests := []struct {
		name      string
		additions []HopAddition
		want      float64
	}{
		{"none", nil, 0},
		{"whole", []HopAddition{centennial(HopWhole), centennial(HopWhole)}, 5.76},
		{"pellet", []HopAddition{centennial(HopPellet), centennial(HopPellet)}, 6.336},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, IBU(tt.additions, vol, og), 0.01)
		})
	}

	cascade := HopAddition{Weight: measurement.FromGrams(28), AlphaAcid: 0.064, Minutes: 45}
	assert.InDelta(t, 18.97, IBU([]HopAddition{cascade}, measurement.FromLiters(20), sg(1.050)), 0.01)
}

func TestBitteringWeight(t *testing.T) {
	vol, og := measurement.FromLiters(22), sg(1.058)

	t.Run("no other additions", func(t *testing.T) {
		w, err := BitteringWeight(17, nil, 0.085, 0, vol, og)
		require.NoError(t, err)
		assert.InDelta(t, 20.50, w.Grams(), 0.01)
	})

	t.Run("with other additions", func(t *testing.T) {
		others := []HopAddition{centennial(HopWhole), centennial(HopPlug)}
		w, err := BitteringWeight(16.76, others, 0.085, 60, vol, og)
		require.NoError(t, err)
		assert.InDelta(t, 13.2611, w.Grams(), 0.001)
	})

	t.Run("inverts IBU", func(t *testing.T) {
		w, err := BitteringWeight(35, nil, 0.12, 60, vol, og)
		require.NoError(t, err)
		add := HopAddition{Weight: w, AlphaAcid: 0.12, Minutes: 60}
		assert.InDelta(t, 35, AdditionIBU(add, vol, og), 1e-9)
	})

	t.Run("target already exceeded", func(t *testing.T) {
		others := []HopAddition{{Weight: measurement.FromGrams(20), AlphaAcid: 0.085, Minutes: 60}}
		_, err := BitteringWeight(10, others, 0.085, 0, vol, og)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNegativeTarget))
		assert.True(t, brewerrors.IsDomain(err))
	})

	t.Run("zero alpha acid", func(t *testing.T) {
		_, err := BitteringWeight(10, nil, 0, 60, vol, og)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDivisionByZero))
	})

	t.Run("zero volume", func(t *testing.T) {
		_, err := BitteringWeight(10, nil, 0.085, 60, measurement.FromLiters(0), og)
		require.Error(t, err)
		assert.True(t, brewerrors.IsDomain(err))
	})
}

func TestParseHopForm(t *testing.T) {
	tests := []struct {
		in      string
		want    HopForm
		wantErr bool
	}{
		{"", HopWhole, false},
		{"whole", HopWhole, false},
		{"Plug", HopPlug, false},
		{" PELLET ", HopPellet, false},
		{"pellets", HopPellet, false},
		{"leaf", HopWhole, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHopForm(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, brewerrors.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParseHopForm(t, got.String()))
		})
	}
}

func mustParseHopForm(t *testing.T, s string) HopForm {
	t.Helper()
	f, err := ParseHopForm(s)
	require.NoError(t, err)
	return f
}
