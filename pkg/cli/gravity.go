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

func boilOffCmd() *cli.Command {
	return &cli.Command{
		Name:  "boil-off",
		Usage: "Calculate how far to dilute or boil down wort to hit a gravity or volume",
		Description: `With --desired-gravity the volume needed to reach it is calculated. With
--target-volume the gravity the wort ends up at is calculated. Exactly one
of the two is required.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "wort-volume",
				Aliases:  []string{"w"},
				Usage:    "Current wort volume (e.g., 25l, 6gal)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "current-gravity",
				Aliases:  []string{"c"},
				Usage:    "Current gravity (e.g., 1.050)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "desired-gravity",
				Aliases: []string{"d"},
				Usage:   "Gravity to reach",
			},
			&cli.StringFlag{
				Name:    "target-volume",
				Aliases: []string{"t"},
				Usage:   "Volume to reach",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := calculator.New().Dilution(calculator.DilutionRequest{
				Gravity:       cmd.String("current-gravity"),
				Volume:        cmd.String("wort-volume"),
				TargetVolume:  cmd.String("target-volume"),
				TargetGravity: cmd.String("desired-gravity"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameDilution, res)
		},
	}
}

func dilutingCmd() *cli.Command {
	return &cli.Command{
		Name:  "diluting",
		Usage: "Calculate the gravity after diluting to a new volume",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "sg",
				Aliases:  []string{"g"},
				Usage:    "Current specific gravity (e.g., 1.060)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "current-volume",
				Aliases:  []string{"cv"},
				Usage:    "Current volume (e.g., 10l)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "target-volume",
				Aliases:  []string{"tv"},
				Usage:    "Volume after dilution (e.g., 12l)",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := calculator.New().Dilution(calculator.DilutionRequest{
				Gravity:      cmd.String("sg"),
				Volume:       cmd.String("current-volume"),
				TargetVolume: cmd.String("target-volume"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameDilution, res)
		},
	}
}

func sgCorrectionCmd() *cli.Command {
	return &cli.Command{
		Name:  "sg-correction",
		Usage: "Correct a gravity reading taken away from the hydrometer calibration temperature",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "sg",
				Aliases:  []string{"s"},
				Usage:    "Measured specific gravity",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "calibration-temperature",
				Aliases:  []string{"ct"},
				Usage:    "Hydrometer calibration temperature (e.g., 20C, 60F)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "measured-temperature",
				Aliases:  []string{"mt"},
				Usage:    "Sample temperature at measurement",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := calculator.New().SGCorrection(calculator.SGCorrectionRequest{
				SG:                     cmd.String("sg"),
				CalibrationTemperature: cmd.String("calibration-temperature"),
				MeasuredTemperature:    cmd.String("measured-temperature"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameSGCorrection, res)
		},
	}
}
