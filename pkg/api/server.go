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

package api

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/mchmarny/brewkit/pkg/calculator"
	"github.com/mchmarny/brewkit/pkg/catalog"
	"github.com/mchmarny/brewkit/pkg/logging"
	"github.com/mchmarny/brewkit/pkg/server"
)

const (
	name           = "brewd"
	versionDefault = "dev"

	// envPrefix prefixes the dataset override variables, e.g. BREWKIT_STYLES_PATH.
	envPrefix = "brewkit"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/brewkit/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// datasetConfig holds the optional dataset overrides, each a file path or
// http(s) URL.
type datasetConfig struct {
	StylesPath   string `envconfig:"STYLES_PATH"`
	HopsPath     string `envconfig:"HOPS_PATH"`
	YeastsPath   string `envconfig:"YEASTS_PATH"`
	CaloriesPath string `envconfig:"CALORIES_PATH"`
}

func (c datasetConfig) options() []catalog.Option {
	return []catalog.Option{
		catalog.WithStylesPath(c.StylesPath),
		catalog.WithHopsPath(c.HopsPath),
		catalog.WithYeastsPath(c.YeastsPath),
		catalog.WithCaloriesPath(c.CaloriesPath),
	}
}

// loadEnv reads a .env file from the working directory when there is one.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the reference datasets, sets up routes, and
// handles graceful shutdown.
// Returns an error if the datasets fail to load or the server fails.
func Serve() error {
	ctx := context.Background()

	if err := loadEnv(); err != nil {
		return err
	}

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	var dc datasetConfig
	if err := envconfig.Process(envPrefix, &dc); err != nil {
		return fmt.Errorf("failed to read dataset configuration: %w", err)
	}

	cat, err := catalog.Load(ctx, dc.options()...)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		return err
	}

	h := NewHandler(cat, calculator.New(calculator.WithCatalog(cat)))

	// Create and run server
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
