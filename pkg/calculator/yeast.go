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
	"github.com/mchmarny/brewkit/pkg/calc"
)

// YeastViabilityRequest ages a yeast package either from its production
// date or by a number of days. DateFormat is a Go time layout and defaults
// to day/month/year.
type YeastViabilityRequest struct {
	ProductionDate string   `json:"production_date,omitempty" yaml:"production_date,omitempty"`
	DateFormat     string   `json:"date_format,omitempty" yaml:"date_format,omitempty"`
	Days           *float64 `json:"days,omitempty" yaml:"days,omitempty"`
	CellCount      *float64 `json:"cell_count,omitempty" yaml:"cell_count,omitempty" validate:"omitempty,gt=0"`
}

// YeastViabilityResult is the percentage of viable cells and, when the
// original cell count was given, the viable cells left.
type YeastViabilityResult struct {
	Days      float64  `json:"days" yaml:"days"`
	Viability float64  `json:"viability" yaml:"viability"`
	Cells     *float64 `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// YeastViability estimates how much of a yeast package is still viable.
// Production dates in the future and negative days count as zero days.
func (c *Calculator) YeastViability(req YeastViabilityRequest) (*YeastViabilityResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := exactlyOne(map[string]bool{
		"production_date": req.ProductionDate != "",
		"days":            req.Days != nil,
	}); err != nil {
		return nil, err
	}

	var days float64
	if req.Days != nil {
		days = max(*req.Days, 0)
	} else {
		produced, err := calc.ParseProductionDate(req.ProductionDate, req.DateFormat)
		if err != nil {
			return nil, err
		}
		days = max(calc.DaysSince(produced, c.now()), 0)
	}

	res := &YeastViabilityResult{
		Days:      days,
		Viability: round(calc.Viability(days)),
	}
	if req.CellCount != nil {
		res.Cells = roundPtr(calc.CellCount(*req.CellCount, days))
	}
	return res, nil
}
