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

func primingCmd() *cli.Command {
	return &cli.Command{
		Name:  "priming",
		Usage: "Calculate priming sugar weights for bottle conditioning",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "temp",
				Aliases: []string{"t"},
				Value:   defaults.PrimingTemperature,
				Usage:   "Beer temperature (e.g., 20C, 68F)",
			},
			&cli.StringFlag{
				Name:    "amount",
				Aliases: []string{"a"},
				Value:   defaults.PrimingVolume,
				Usage:   "Beer volume (e.g., 25l, 5gal)",
			},
			&cli.FloatFlag{
				Name:    "co2-volumes",
				Aliases: []string{"c"},
				Value:   defaults.PrimingCO2Volumes,
				Usage:   "Target carbonation, volumes of CO2",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			co2 := cmd.Float("co2-volumes")
			res, err := calculator.New().Priming(calculator.PrimingRequest{
				Temperature: cmd.String("temp"),
				Volume:      cmd.String("amount"),
				CO2:         &co2,
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NamePriming, res)
		},
	}
}

func numBottlesCmd() *cli.Command {
	return &cli.Command{
		Name:  "num-bottles",
		Usage: "Calculate how many standard-size bottles a batch fills",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "volume",
				Aliases:  []string{"v"},
				Usage:    "Batch volume (e.g., 25l, 5gal)",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := calculator.New().Bottles(calculator.BottlesRequest{
				Volume: cmd.String("volume"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameBottles, res)
		},
	}
}
