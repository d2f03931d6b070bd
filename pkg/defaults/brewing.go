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

package defaults

// Brewing input defaults shared by the CLI and the API.
const (
	// ServingVolume is the serving size used when a calorie request omits one.
	ServingVolume = "100ml"

	// BitteringBoilMinutes is the boil time assumed for a bittering addition.
	BitteringBoilMinutes = 60.0

	// ProductionDateLayout is the layout of yeast production dates (day/month/year).
	ProductionDateLayout = "02/01/2006"

	// PrimingTemperature is the beer temperature assumed by the priming calculator.
	PrimingTemperature = "20C"

	// PrimingVolume is the batch size assumed by the priming calculator.
	PrimingVolume = "25l"

	// PrimingCO2Volumes is the carbonation target assumed by the priming calculator.
	PrimingCO2Volumes = 2.0

	// ResultPrecision is the number of decimal places kept in presented results.
	ResultPrecision = 4
)
