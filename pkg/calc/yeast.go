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
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mchmarny/brewkit/pkg/defaults"
	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
)

// Viability returns the percentage of viable cells in a yeast package the
// given number of days after production. Negative days count as zero.
func Viability(days float64) float64 {
	return 97 * math.Pow(2.72, -0.008*max(days, 0))
}

// ViabilityAt returns the viability of a package produced at produced, as of
// now, counting whole days only.
func ViabilityAt(produced, now time.Time) float64 {
	return Viability(DaysSince(produced, now))
}

// DaysSince returns the whole days between produced and now, truncated
// toward zero.
func DaysSince(produced, now time.Time) float64 {
	return float64(now.Sub(produced) / (24 * time.Hour))
}

// CellCount returns the viable cells left from an original cell count after
// the given number of days.
func CellCount(original, days float64) float64 {
	return original * Viability(days) / 100
}

// ParseProductionDate reads a production date in layout, or in
// defaults.ProductionDateLayout when layout is empty.
func ParseProductionDate(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = defaults.ProductionDateLayout
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidInput,
			fmt.Sprintf("invalid production date %q", s), err, map[string]any{
				"input":  s,
				"layout": layout,
			})
	}
	return t, nil
}
