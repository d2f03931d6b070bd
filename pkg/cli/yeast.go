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

func yeastViabilityCmd() *cli.Command {
	return &cli.Command{
		Name:  "yeast-viability",
		Usage: "Estimate the viable cells left in a yeast package",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "production-date",
				Aliases: []string{"p"},
				Usage:   "Date the package was produced (e.g., 11/01/2026)",
			},
			&cli.StringFlag{
				Name:    "date-format",
				Aliases: []string{"f"},
				Value:   defaults.ProductionDateLayout,
				Usage:   "Go time layout of --production-date",
			},
			&cli.FloatFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Usage:   "Days since production; used instead of --production-date",
			},
			&cli.FloatFlag{
				Name:    "cell-count",
				Aliases: []string{"c"},
				Usage:   "Cells in the package at production, e.g. 100 (billion)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, err := calculator.New().YeastViability(calculator.YeastViabilityRequest{
				ProductionDate: cmd.String("production-date"),
				DateFormat:     cmd.String("date-format"),
				Days:           optionalFloat(cmd, "days"),
				CellCount:      optionalFloat(cmd, "cell-count"),
			})
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindCalculation, calculator.NameYeastViability, res)
		},
	}
}
