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
	"github.com/mchmarny/brewkit/pkg/header"
)

func abvCmd() *cli.Command {
	return &cli.Command{
		Name:  "abv",
		Usage: "Calculate ABV from original and final gravity, or final gravity from original gravity and ABV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "og",
				Usage:    "Original gravity (e.g., 1.064, 15.6P)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "fg",
				Aliases: []string{"f"},
				Usage:   "Final gravity (e.g., 1.012)",
			},
			&cli.FloatFlag{
				Name:    "abv",
				Aliases: []string{"a"},
				Usage:   "Alcohol by volume, percent; calculates final gravity instead",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c := calculator.New()

			if cmd.IsSet("abv") {
				res, err := c.FG(calculator.FGRequest{
					OG:  cmd.String("og"),
					ABV: optionalFloat(cmd, "abv"),
				})
				if err != nil {
					return err
				}
				return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameFG, res)
			}

			res, err := c.ABV(calculator.ABVRequest{
				OG: cmd.String("og"),
				FG: cmd.String("fg"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameABV, res)
		},
	}
}

func fgCmd() *cli.Command {
	return &cli.Command{
		Name:  "fg",
		Usage: "Calculate final gravity from original gravity and yeast attenuation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "og",
				Usage:    "Original gravity (e.g., 1.056)",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     "attenuation",
				Aliases:  []string{"a"},
				Usage:    "Apparent attenuation, percent",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := calculator.New().FG(calculator.FGRequest{
				OG:          cmd.String("og"),
				Attenuation: optionalFloat(cmd, "attenuation"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameFG, res)
		},
	}
}

func abvAbwCmd() *cli.Command {
	return &cli.Command{
		Name:  "abv-abw",
		Usage: "Convert alcohol by volume to alcohol by weight and back",
		Description: `Converts ABV to ABW, or ABW to ABV with --reverse. When the total volume
is given, the alcohol mass (forward) or volume (reverse) is reported too.
Without --total-density the fixed 0.8 ABW/ABV ratio is used; with it, the
ratio is the ethanol density (0.789 g/ml) over the total density.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     "percent",
				Aliases:  []string{"p"},
				Usage:    "Alcohol percentage to convert",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "total-volume",
				Aliases: []string{"v"},
				Usage:   "Total beer volume (e.g., 330ml)",
			},
			&cli.FloatFlag{
				Name:    "total-density",
				Aliases: []string{"d"},
				Usage:   "Total beer density, g/ml",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Convert ABW to ABV",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := calculator.New().ABW(calculator.ABWRequest{
				Percent: cmd.Float("percent"),
				Density: optionalFloat(cmd, "total-density"),
				Volume:  cmd.String("total-volume"),
				Reverse: cmd.Bool("reverse"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameABW, res)
		},
	}
}
