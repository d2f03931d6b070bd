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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
)

func TestViability(t *testing.T) {
	tests := []struct {
		days float64
		want float64
	}{
		{0, 97},
		{-5, 97},
		{10, 89.5378},
		{100, 43.5629},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Viability(tt.days), 0.01, "Viability(%v)", tt.days)
	}
}

func TestViabilityDecreases(t *testing.T) {
	prev := Viability(0)
	for d := 1.0; d <= 365; d++ {
		v := Viability(d)
		assert.Less(t, v, prev)
		assert.Greater(t, v, 0.0)
		prev = v
	}
}

func TestViabilityAt(t *testing.T) {
	produced := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// partial days do not count
	now := time.Date(2024, 1, 11, 23, 0, 0, 0, time.UTC)
	assert.InDelta(t, Viability(10), ViabilityAt(produced, now), tolerance)
	assert.Equal(t, 10.0, DaysSince(produced, now))

	// future production dates read as fresh
	assert.InDelta(t, 97, ViabilityAt(now, produced), tolerance)
}

func TestCellCount(t *testing.T) {
	assert.InDelta(t, 97, CellCount(100, 0), tolerance)
	assert.InDelta(t, 100*Viability(30)/100, CellCount(100, 30), tolerance)
	assert.Zero(t, CellCount(0, 30))
}

func TestParseProductionDate(t *testing.T) {
	got, err := ParseProductionDate("15/03/2024", "")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())

	got, err = ParseProductionDate("2024-03-15", "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Day())

	for _, in := range []string{"", "2024-03-15", "31/02/2024", "tomorrow"} {
		_, err = ParseProductionDate(in, "")
		require.Error(t, err, in)
		assert.True(t, brewerrors.IsInvalidInput(err), in)
	}
}
