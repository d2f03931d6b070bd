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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/brewkit/pkg/logging"
)

const (
	name           = "brew"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	// e.g., -X "github.com/mchmarny/brewkit/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the brew CLI with the process arguments and exits non-zero
// on failure. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:                 "Homebrewing calculators and reference data",
		EnableShellCompletion: true,
		Description: `Calculators for alcohol content, gravity, priming, bitterness, calories
and yeast viability, plus searches over the beer style, hop and yeast
reference data.

Quantities take a unit suffix: volumes (25l, 5gal, 330ml), temperatures
(20C, 68F), masses (28g, 1oz) and densities (1.050, 12P, 12Bx).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  stylesFileFlag,
				Usage: "Path or http(s) URL of a beer styles dataset replacing the built-in one",
			},
			&cli.StringFlag{
				Name:  hopsFileFlag,
				Usage: "Path or http(s) URL of a hops dataset replacing the built-in one",
			},
			&cli.StringFlag{
				Name:  yeastsFileFlag,
				Usage: "Path or http(s) URL of a yeasts dataset replacing the built-in one",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			// Configure slog after flags are parsed so --log-level takes effect
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			abvCmd(),
			abvAbwCmd(),
			beerStyleCmd(),
			bitteringCmd(),
			boilOffCmd(),
			caloriesCmd(),
			dilutingCmd(),
			fgCmd(),
			hopsCmd(),
			ibuCmd(),
			numBottlesCmd(),
			primingCmd(),
			sgCorrectionCmd(),
			yeastViabilityCmd(),
			yeastsCmd(),
		},
	}
}
