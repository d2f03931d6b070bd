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

package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mchmarny/brewkit/pkg/measurement"
)

// caloriesABVWindow is how far below a breakpoint an ABV may sit and still
// resolve to it.
const caloriesABVWindow = 0.5

// InRange reports whether v lies in [lo, hi]. A nil v always matches.
func InRange(v *float64, lo, hi float64) bool {
	if v == nil {
		return true
	}
	return lo <= *v && *v <= hi
}

// InOptionalRange is InRange for records whose bounds may be missing.
// A present v never matches a record that lacks either bound.
func InOptionalRange(v, lo, hi *float64) bool {
	if v == nil {
		return true
	}
	if lo == nil || hi == nil {
		return false
	}
	return InRange(v, *lo, *hi)
}

// ContainsFold reports whether needle occurs in haystack under Unicode
// case folding. A nil needle always matches.
func ContainsFold(haystack string, needle *string) bool {
	if needle == nil {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(haystack), fold.String(*needle))
}

// Member reports whether needle is an exact element of list. A nil needle
// always matches.
func Member(list []string, needle *string) bool {
	if needle == nil {
		return true
	}
	return slices.Contains(list, *needle)
}

// Filter returns the records for which pred is true, in their original
// order. The result is never nil.
func Filter[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// StyleCriteria selects beer styles. Gravities are specific gravity.
type StyleCriteria struct {
	Name  *string
	OG    *float64
	FG    *float64
	ABV   *float64
	IBU   *float64
	Color *float64
}

// Matches reports whether s satisfies every present field.
func (c StyleCriteria) Matches(s BeerStyle) bool {
	return ContainsFold(s.Name, c.Name) &&
		InRange(c.OG, s.OriginalGravityMin, s.OriginalGravityMax) &&
		InRange(c.FG, s.FinalGravityMin, s.FinalGravityMax) &&
		InRange(c.ABV, s.ABVMin, s.ABVMax) &&
		InRange(c.IBU, s.IBUMin, s.IBUMax) &&
		InRange(c.Color, s.ColorSRMMin, s.ColorSRMMax)
}

// HopCriteria selects hops. Acid values are percentages.
type HopCriteria struct {
	Name        *string
	Country     *string
	AlphaAcid   *float64
	BetaAcid    *float64
	Purpose     *string
	Substituted *string
}

// Matches reports whether h satisfies every present field. Substituted
// matches hops that list the given variety as a substitution.
func (c HopCriteria) Matches(h Hop) bool {
	return ContainsFold(h.Name, c.Name) &&
		ContainsFold(h.Country, c.Country) &&
		InRange(c.AlphaAcid, h.AlphaAcidMin, h.AlphaAcidMax) &&
		InRange(c.BetaAcid, h.BetaAcidMin, h.BetaAcidMax) &&
		Member(h.Purpose, c.Purpose) &&
		Member(h.Substitutions, c.Substituted)
}

// YeastCriteria selects yeasts.
type YeastCriteria struct {
	Company     *string
	Name        *string
	Attenuation *float64
	Temperature *measurement.Temperature
}

// Matches reports whether y satisfies every present field.
func (c YeastCriteria) Matches(y Yeast) bool {
	var temp *float64
	if c.Temperature != nil {
		f := c.Temperature.Fahrenheit()
		temp = &f
	}
	return ContainsFold(y.Company, c.Company) &&
		ContainsFold(y.Name, c.Name) &&
		InOptionalRange(c.Attenuation, y.MinAttenuation, y.MaxAttenuation) &&
		InOptionalRange(temp, y.MinTemp, y.MaxTemp)
}

// CaloriesCriteria selects ABV to calories breakpoints.
type CaloriesCriteria struct {
	ABV *float64
}

// Matches reports whether r.ABV is above the criteria ABV less half a
// percent. The first matching breakpoint in ascending order is the one
// that applies.
func (c CaloriesCriteria) Matches(r ABVCalories) bool {
	if c.ABV == nil {
		return true
	}
	return *c.ABV-caloriesABVWindow < r.ABV
}
