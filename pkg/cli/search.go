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

	"github.com/mchmarny/brewkit/pkg/catalog"
	"github.com/mchmarny/brewkit/pkg/header"
)

func beerStyleCmd() *cli.Command {
	return &cli.Command{
		Name:  "beer-style",
		Usage: "Find beer styles matching a name and recipe figures",
		Description: `Lists the styles whose ranges include every figure given. The name matches
case-insensitively anywhere in the style name. With no flags every style is
listed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Part of the style name (e.g., ipa)"},
			&cli.StringFlag{Name: "og", Usage: "Original gravity (e.g., 1.060, 15P)"},
			&cli.StringFlag{Name: "fg", Aliases: []string{"f"}, Usage: "Final gravity"},
			&cli.StringFlag{Name: "abv", Aliases: []string{"a"}, Usage: "Alcohol by volume, percent"},
			&cli.StringFlag{Name: "ibu", Aliases: []string{"i"}, Usage: "Bitterness, IBU"},
			&cli.StringFlag{Name: "color", Aliases: []string{"c"}, Usage: "Color, SRM"},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			criteria, err := catalog.ParseStyleCriteria(queryFromFlags(cmd, map[string]string{
				"name":  catalog.ParamName,
				"og":    catalog.ParamOG,
				"fg":    catalog.ParamFG,
				"abv":   catalog.ParamABV,
				"ibu":   catalog.ParamIBU,
				"color": catalog.ParamColor,
			}))
			if err != nil {
				return err
			}

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindBeerStyleList, "", cat.FindStyles(criteria))
		},
	}
}

func hopsCmd() *cli.Command {
	return &cli.Command{
		Name:  "hops",
		Usage: "Find hop varieties by name, origin, acids, purpose or substitution",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Part of the hop name"},
			&cli.StringFlag{Name: "country", Aliases: []string{"c"}, Usage: "Part of the country of origin"},
			&cli.StringFlag{Name: "alpha-acid", Aliases: []string{"a"}, Usage: "Alpha acid, percent"},
			&cli.StringFlag{Name: "beta-acid", Aliases: []string{"b"}, Usage: "Beta acid, percent"},
			&cli.StringFlag{Name: "purpose", Aliases: []string{"p"}, Usage: "Purpose (Aroma or Bittering)"},
			&cli.StringFlag{Name: "substituted", Aliases: []string{"s"}, Usage: "Hops that can replace this variety"},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			criteria, err := catalog.ParseHopCriteria(queryFromFlags(cmd, map[string]string{
				"name":        catalog.ParamName,
				"country":     catalog.ParamCountry,
				"alpha-acid":  catalog.ParamAlphaAcid,
				"beta-acid":   catalog.ParamBetaAcid,
				"purpose":     catalog.ParamPurpose,
				"substituted": catalog.ParamSubstituted,
			}))
			if err != nil {
				return err
			}

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindHopList, "", cat.FindHops(criteria))
		},
	}
}

func yeastsCmd() *cli.Command {
	return &cli.Command{
		Name:  "yeasts",
		Usage: "Find yeast strains by company, name, attenuation or temperature",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "company", Aliases: []string{"c"}, Usage: "Part of the producer name"},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Part of the strain name"},
			&cli.StringFlag{Name: "attenuation", Aliases: []string{"a"}, Usage: "Attenuation, percent"},
			&cli.StringFlag{Name: "temperature", Aliases: []string{"t"}, Usage: "Fermentation temperature (e.g., 18C, 65F)"},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			criteria, err := catalog.ParseYeastCriteria(queryFromFlags(cmd, map[string]string{
				"company":     catalog.ParamCompany,
				"name":        catalog.ParamName,
				"attenuation": catalog.ParamAttenuation,
				"temperature": catalog.ParamTemperature,
			}))
			if err != nil {
				return err
			}

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, header.KindYeastList, "", catalog.YeastResults(cat.FindYeasts(criteria)))
		},
	}
}
