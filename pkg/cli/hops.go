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
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/brewkit/pkg/calculator"
	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/header"
)

const additionUsage = `Hop addition as weight:alpha-acid:minutes[:form], e.g. 28g:10:60 or 1oz:5.5:15:pellet.
	Form is whole (default), plug or pellet. Repeat the flag for each addition.`

func ibuCmd() *cli.Command {
	return &cli.Command{
		Name:  "ibu",
		Usage: "Calculate the bitterness (IBU) of a set of hop additions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "volume",
				Aliases:  []string{"v"},
				Usage:    "Post-boil wort volume (e.g., 20l, 5gal)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "gravity",
				Aliases:  []string{"g"},
				Usage:    "Boil gravity (e.g., 1.050)",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "addition",
				Aliases:  []string{"a"},
				Usage:    additionUsage,
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			additions, err := parseAdditions(cmd.StringSlice("addition"))
			if err != nil {
				return err
			}

			res, err := calculator.New().IBU(calculator.IBURequest{
				Volume:    cmd.String("volume"),
				Gravity:   cmd.String("gravity"),
				Additions: additions,
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameIBU, res)
		},
	}
}

func bitteringCmd() *cli.Command {
	return &cli.Command{
		Name:  "bittering",
		Usage: "Calculate the bittering hop weight needed to reach a target IBU",
		Description: `Other additions given with --addition count toward the target; the
bittering addition covers the rest.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     "target-ibu",
				Aliases:  []string{"i"},
				Usage:    "Target bitterness, IBU",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     "alpha-acid",
				Aliases:  []string{"aa"},
				Usage:    "Alpha acid of the bittering hop, percent",
				Required: true,
			},
			&cli.FloatFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "Boil time of the bittering hop, minutes (default: 60)",
			},
			&cli.StringFlag{
				Name:     "volume",
				Aliases:  []string{"v"},
				Usage:    "Post-boil wort volume (e.g., 20l, 5gal)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "gravity",
				Aliases:  []string{"g"},
				Usage:    "Boil gravity (e.g., 1.050)",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "addition",
				Aliases: []string{"a"},
				Usage:   additionUsage,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			additions, err := parseAdditions(cmd.StringSlice("addition"))
			if err != nil {
				return err
			}

			res, err := calculator.New().Bittering(calculator.BitteringRequest{
				TargetIBU: cmd.Float("target-ibu"),
				AlphaAcid: cmd.Float("alpha-acid"),
				Time:      cmd.Float("time"),
				Volume:    cmd.String("volume"),
				Gravity:   cmd.String("gravity"),
				Additions: additions,
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameBittering, res)
		},
	}
}

// parseAdditions reads weight:alpha-acid:minutes[:form] values.
func parseAdditions(values []string) ([]calculator.HopAdditionRequest, error) {
	out := make([]calculator.HopAdditionRequest, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, invalidFlag("addition", v,
				fmt.Errorf("expected weight:alpha-acid:minutes[:form]"))
		}

		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, invalidFlag("addition", v, err)
		}
		minutes, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, invalidFlag("addition", v, err)
		}

		a := calculator.HopAdditionRequest{
			Weight:    strings.TrimSpace(parts[0]),
			AlphaAcid: alpha,
			Time:      minutes,
		}
		if len(parts) == 4 {
			a.Form = strings.TrimSpace(parts[3])
		}
		out = append(out, a)
	}
	return out, nil
}

func invalidFlag(flag, value string, cause error) error {
	return brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidInput,
		fmt.Sprintf("invalid value for flag --%s", flag), cause,
		map[string]any{"flag": flag, "value": value})
}
