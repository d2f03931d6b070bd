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

	"github.com/mchmarny/brewkit/pkg/measurement"
)

const (
	// calorieServingMilliliters is the serving the calorie formulas are fitted to.
	calorieServingMilliliters = 340.1942775

	// maxCalorieGravity is the pole of the alcohol calorie formula.
	maxCalorieGravity = 1.775
)

// CalorieEstimate is the energy content of one serving.
type CalorieEstimate struct {
	Serving measurement.Volume
	Alcohol measurement.Energy
	Carbs   measurement.Energy
	Total   measurement.Energy
}

// AlcoholCalories returns the kilocalories from alcohol in a 12 oz serving.
func AlcoholCalories(og, fg measurement.Density) float64 {
	o, f := og.SpecificGravity(), fg.SpecificGravity()
	return 1881.22 * f * (o - f) / (maxCalorieGravity - o)
}

// CarbCalories returns the kilocalories from residual carbohydrates in a 12 oz
// serving.
func CarbCalories(og, fg measurement.Density) float64 {
	o, f := og.SpecificGravity(), fg.SpecificGravity()
	return 3550 * f * (0.1808*o + 0.8192*f - 1.0004)
}

// TotalCalories returns the kilocalories in a 12 oz serving.
func TotalCalories(og, fg measurement.Density) float64 {
	return AlcoholCalories(og, fg) + CarbCalories(og, fg)
}

// EstimateCalories returns the energy in a serving of beer brewed from og to fg.
func EstimateCalories(og, fg measurement.Density, serving measurement.Volume) (CalorieEstimate, error) {
	if og.SpecificGravity() >= maxCalorieGravity {
		return CalorieEstimate{}, domainError(
			fmt.Sprintf("original gravity must be below %v, got %v", maxCalorieGravity, og.SpecificGravity()),
			ErrDivisionByZero, map[string]any{"og": og.SpecificGravity()})
	}

	alcohol := ServingCalories(AlcoholCalories(og, fg), serving)
	carbs := ServingCalories(CarbCalories(og, fg), serving)

	return CalorieEstimate{
		Serving: serving,
		Alcohol: alcohol,
		Carbs:   carbs,
		Total:   measurement.FromJoules(alcohol.Joules() + carbs.Joules()),
	}, nil
}

// ServingCalories scales kilocalories in a 12 oz serving to serving.
func ServingCalories(kcalPer12oz float64, serving measurement.Volume) measurement.Energy {
	return measurement.FromKilocalories(kcalPer12oz * serving.Milliliters() / calorieServingMilliliters)
}
