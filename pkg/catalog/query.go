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
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/measurement"
)

// Query parameter names.
const (
	ParamName        = "name"
	ParamOG          = "og"
	ParamFG          = "fg"
	ParamABV         = "abv"
	ParamIBU         = "ibu"
	ParamColor       = "color"
	ParamCountry     = "country"
	ParamAlphaAcid   = "alpha_acid"
	ParamBetaAcid    = "beta_acid"
	ParamPurpose     = "purpose"
	ParamSubstituted = "substituted"
	ParamCompany     = "company"
	ParamAttenuation = "attenuation"
	ParamTemperature = "temperature"
)

// ParseStyleCriteria builds style criteria from query parameters:
// name, og, fg, abv, ibu and color. Gravities accept any density unit
// ("1.050", "12.4P", "12°Bx").
func ParseStyleCriteria(values url.Values) (StyleCriteria, error) {
	var c StyleCriteria
	var err error

	c.Name = stringParam(values, ParamName)
	if c.OG, err = densityParam(values, ParamOG); err != nil {
		return StyleCriteria{}, err
	}
	if c.FG, err = densityParam(values, ParamFG); err != nil {
		return StyleCriteria{}, err
	}
	if c.ABV, err = floatParam(values, ParamABV); err != nil {
		return StyleCriteria{}, err
	}
	if c.IBU, err = floatParam(values, ParamIBU); err != nil {
		return StyleCriteria{}, err
	}
	if c.Color, err = floatParam(values, ParamColor); err != nil {
		return StyleCriteria{}, err
	}
	return c, nil
}

// ParseHopCriteria builds hop criteria from query parameters: name,
// country, alpha_acid, beta_acid, purpose and substituted.
func ParseHopCriteria(values url.Values) (HopCriteria, error) {
	var c HopCriteria
	var err error

	c.Name = stringParam(values, ParamName)
	c.Country = stringParam(values, ParamCountry)
	c.Purpose = stringParam(values, ParamPurpose)
	c.Substituted = stringParam(values, ParamSubstituted)
	if c.AlphaAcid, err = floatParam(values, ParamAlphaAcid); err != nil {
		return HopCriteria{}, err
	}
	if c.BetaAcid, err = floatParam(values, ParamBetaAcid); err != nil {
		return HopCriteria{}, err
	}
	return c, nil
}

// ParseYeastCriteria builds yeast criteria from query parameters:
// company, name, attenuation and temperature. Temperature takes a unit
// suffix ("68F", "20C"); a bare number is Celsius.
func ParseYeastCriteria(values url.Values) (YeastCriteria, error) {
	var c YeastCriteria
	var err error

	c.Company = stringParam(values, ParamCompany)
	c.Name = stringParam(values, ParamName)
	if c.Attenuation, err = floatParam(values, ParamAttenuation); err != nil {
		return YeastCriteria{}, err
	}
	if s := stringParam(values, ParamTemperature); s != nil {
		t, perr := measurement.ParseTemperature(*s)
		if perr != nil {
			return YeastCriteria{}, paramError(ParamTemperature, *s, perr)
		}
		c.Temperature = &t
	}
	return c, nil
}

// stringParam returns nil for a missing or blank parameter.
func stringParam(values url.Values, key string) *string {
	s := strings.TrimSpace(values.Get(key))
	if s == "" {
		return nil
	}
	return &s
}

func floatParam(values url.Values, key string) (*float64, error) {
	s := stringParam(values, key)
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, paramError(key, *s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, paramError(key, *s, fmt.Errorf("not a finite number"))
	}
	return &v, nil
}

func densityParam(values url.Values, key string) (*float64, error) {
	s := stringParam(values, key)
	if s == nil {
		return nil, nil
	}
	d, err := measurement.ParseDensity(*s)
	if err != nil {
		return nil, paramError(key, *s, err)
	}
	sg := d.SpecificGravity()
	return &sg, nil
}

func paramError(key, value string, cause error) error {
	return brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidInput,
		fmt.Sprintf("invalid value for query parameter %q", key), cause,
		map[string]any{"parameter": key, "value": value})
}
