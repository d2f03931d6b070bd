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

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
)

// unit maps a lowercase suffix to the constructor of its quantity.
type unit[Q any] struct {
	suffix string
	from   func(float64) Q
}

// unitTable is an ordered suffix table, longest suffix first.
type unitTable[Q any] struct {
	kind      string
	units     []unit[Q]
	canonical func(float64) Q
}

func newUnitTable[Q any](kind string, canonical func(float64) Q, units ...unit[Q]) *unitTable[Q] {
	sorted := slices.Clone(units)
	slices.SortStableFunc(sorted, func(a, b unit[Q]) int {
		return len(b.suffix) - len(a.suffix)
	})
	return &unitTable[Q]{
		kind:      kind,
		units:     sorted,
		canonical: canonical,
	}
}

// parse reads s as a number followed by an optional unit suffix.
func (t *unitTable[Q]) parse(s string) (Q, error) {
	var zero Q

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return t.canonical(0), nil
	}

	lower := strings.ToLower(trimmed)
	num, from := lower, t.canonical
	for _, u := range t.units {
		if strings.HasSuffix(lower, u.suffix) {
			num = strings.TrimSpace(strings.TrimSuffix(lower, u.suffix))
			from = u.from
			break
		}
	}

	v, err := parseNumber(num)
	if err != nil {
		return zero, brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidInput,
			fmt.Sprintf("invalid %s %q", t.kind, s), err, map[string]any{
				"input": s,
				"kind":  t.kind,
			})
	}

	return from(v), nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing numeric value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
