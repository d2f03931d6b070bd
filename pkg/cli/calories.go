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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/brewkit/pkg/calculator"
	"github.com/mchmarny/brewkit/pkg/defaults"
	"github.com/mchmarny/brewkit/pkg/header"
)

func caloriesCmd() *cli.Command {
	return &cli.Command{
		Name:  "calories",
		Usage: "Estimate calories per serving from gravities or from ABV",
		Description: `With --og and --fg the alcohol and carbohydrate calories are calculated.
With --abv the low and high estimates come from the calories table.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "og",
				Usage: "Original gravity (e.g., 1.050)",
			},
			&cli.StringFlag{
				Name:    "fg",
				Aliases: []string{"f"},
				Usage:   "Final gravity (e.g., 1.010)",
			},
			&cli.FloatFlag{
				Name:    "abv",
				Aliases: []string{"a"},
				Usage:   "Alcohol by volume, percent",
			},
			&cli.StringFlag{
				Name:    "volume",
				Aliases: []string{"v"},
				Value:   defaults.ServingVolume,
				Usage:   "Serving volume (e.g., 330ml, 12oz)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var opts []calculator.Option
			if cmd.IsSet("abv") {
				cat, err := loadCatalog(ctx, cmd)
				if err != nil {
					return err
				}
				opts = append(opts, calculator.WithCatalog(cat))
			}

			res, err := calculator.New(opts...).Calories(calculator.CaloriesRequest{
				OG:     cmd.String("og"),
				FG:     cmd.String("fg"),
				ABV:    optionalFloat(cmd, "abv"),
				Volume: cmd.String("volume"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameCalories, res)
		},
	}
}
