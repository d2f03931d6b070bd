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

package calculator

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mchmarny/brewkit/pkg/catalog"
	"github.com/mchmarny/brewkit/pkg/defaults"
	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/measurement"
)

// Calculator names, used as the calculator metadata of CLI documents and as
// the calculator label of API metrics.
const (
	NameABV            = "abv"
	NameABW            = "abw"
	NameFG             = "fg"
	NameCalories       = "calories"
	NameDilution       = "dilution"
	NameSGCorrection   = "sg-correction"
	NamePriming        = "priming"
	NameBottles        = "bottles"
	NameIBU            = "ibu"
	NameBittering      = "bittering"
	NameYeastViability = "yeast-viability"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Calculator turns requests holding unit strings into rounded results.
// It is safe for concurrent use.
type Calculator struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// Option is a functional option for configuring a Calculator.
type Option func(*Calculator)

// WithCatalog sets the reference data used by calculators that need it,
// such as calories from ABV.
func WithCatalog(c *catalog.Catalog) Option {
	return func(calc *Calculator) { calc.catalog = c }
}

// WithClock sets the clock used to age yeast packages.
func WithClock(now func() time.Time) Option {
	return func(calc *Calculator) {
		if now != nil {
			calc.now = now
		}
	}
}

// New returns a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// validateRequest checks req against its validate tags and reports every
// failing field as one INVALID_INPUT error.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return brewerrors.Wrap(brewerrors.ErrCodeInvalidInput, "invalid request", err)
	}

	fields := make(map[string]string, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		_, name, _ := strings.Cut(fe.Namespace(), ".")
		fields[name] = fe.Tag()
		names = append(names, name)
	}

	return brewerrors.NewWithContext(brewerrors.ErrCodeInvalidInput,
		fmt.Sprintf("invalid request fields: %s", strings.Join(names, ", ")),
		map[string]any{"fields": fields})
}

// exactlyOne reports an INVALID_INPUT error unless exactly one of the named
// fields is set.
func exactlyOne(fields map[string]bool) error {
	set := 0
	for _, ok := range fields {
		if ok {
			set++
		}
	}
	if set == 1 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return brewerrors.NewWithContext(brewerrors.ErrCodeInvalidInput,
		"exactly one of the fields must be set", map[string]any{"fields": names})
}

func fieldError(field, input string, err error) error {
	return brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidInput,
		fmt.Sprintf("invalid %s %q", field, input), err, map[string]any{
			"field": field,
			"input": input,
		})
}

func parseDensity(field, s string) (measurement.Density, error) {
	d, err := measurement.ParseDensity(s)
	if err != nil {
		return d, fieldError(field, s, err)
	}
	return d, nil
}

func parseVolume(field, s string) (measurement.Volume, error) {
	v, err := measurement.ParseVolume(s)
	if err != nil {
		return v, fieldError(field, s, err)
	}
	return v, nil
}

func parseTemperature(field, s string) (measurement.Temperature, error) {
	t, err := measurement.ParseTemperature(s)
	if err != nil {
		return t, fieldError(field, s, err)
	}
	return t, nil
}

func parseMass(field, s string) (measurement.Mass, error) {
	m, err := measurement.ParseMass(s)
	if err != nil {
		return m, fieldError(field, s, err)
	}
	return m, nil
}

func fieldIndex(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}

func round(v float64) float64 {
	return measurement.Round(v, defaults.ResultPrecision)
}

func roundPtr(v float64) *float64 {
	r := round(v)
	return &r
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
