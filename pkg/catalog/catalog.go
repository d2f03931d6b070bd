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

package catalog

import (
	"bytes"
	"cmp"
	"context"
	"embed"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/brewkit/pkg/defaults"
	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/serializer"
)

//go:embed data/*.json
var dataFS embed.FS

// Dataset names, also used as the embedded file names.
const (
	DatasetStyles   = "styles"
	DatasetHops     = "hops"
	DatasetYeasts   = "yeasts"
	DatasetCalories = "calories"
)

// Catalog is an immutable set of reference datasets.
type Catalog struct {
	styles   []BeerStyle
	hops     []Hop
	yeasts   []Yeast
	calories []ABVCalories
}

type loadConfig struct {
	stylesPath   string
	hopsPath     string
	yeastsPath   string
	caloriesPath string
}

// Option overrides where a dataset is loaded from.
type Option func(*loadConfig)

// WithStylesPath loads beer styles from a file path or http(s) URL
// instead of the embedded data. An empty path keeps the embedded data.
func WithStylesPath(path string) Option {
	return func(c *loadConfig) { c.stylesPath = path }
}

// WithHopsPath loads hops from a file path or http(s) URL.
func WithHopsPath(path string) Option {
	return func(c *loadConfig) { c.hopsPath = path }
}

// WithYeastsPath loads yeasts from a file path or http(s) URL.
func WithYeastsPath(path string) Option {
	return func(c *loadConfig) { c.yeastsPath = path }
}

// WithCaloriesPath loads the ABV to calories table from a file path or
// http(s) URL.
func WithCaloriesPath(path string) Option {
	return func(c *loadConfig) { c.caloriesPath = path }
}

// Load reads and validates all datasets concurrently. The first failure
// cancels the remaining loads.
func Load(ctx context.Context, opts ...Option) (*Catalog, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	start := time.Now()
	validate := validator.New(validator.WithRequiredStructEnabled())
	cat := &Catalog{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cat.styles, err = loadDataset[BeerStyle](gctx, validate, DatasetStyles, cfg.stylesPath)
		return err
	})
	g.Go(func() (err error) {
		cat.hops, err = loadDataset[Hop](gctx, validate, DatasetHops, cfg.hopsPath)
		return err
	})
	g.Go(func() (err error) {
		cat.yeasts, err = loadDataset[Yeast](gctx, validate, DatasetYeasts, cfg.yeastsPath)
		return err
	})
	g.Go(func() (err error) {
		cat.calories, err = loadDataset[ABVCalories](gctx, validate, DatasetCalories, cfg.caloriesPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(cat.calories, func(a, b ABVCalories) int {
		return cmp.Compare(a.ABV, b.ABV)
	})

	catalogLoadDuration.Observe(time.Since(start).Seconds())
	catalogRecords.WithLabelValues(DatasetStyles).Set(float64(len(cat.styles)))
	catalogRecords.WithLabelValues(DatasetHops).Set(float64(len(cat.hops)))
	catalogRecords.WithLabelValues(DatasetYeasts).Set(float64(len(cat.yeasts)))
	catalogRecords.WithLabelValues(DatasetCalories).Set(float64(len(cat.calories)))

	slog.Debug("catalog loaded",
		"styles", len(cat.styles),
		"hops", len(cat.hops),
		"yeasts", len(cat.yeasts),
		"calories", len(cat.calories),
		"duration", time.Since(start))

	return cat, nil
}

func loadDataset[T any](ctx context.Context, validate *validator.Validate, name, path string) ([]T, error) {
	source := path
	var records []T

	if path == "" {
		source = "embedded"
		data, err := dataFS.ReadFile("data/" + name + ".json")
		if err != nil {
			return nil, brewerrors.Wrap(brewerrors.ErrCodeInternal,
				fmt.Sprintf("failed to read embedded %s dataset", name), err)
		}
		reader, err := serializer.NewReader(serializer.FormatJSON, bytes.NewReader(data))
		if err != nil {
			return nil, brewerrors.Wrap(brewerrors.ErrCodeInternal, "failed to create reader", err)
		}
		if err := reader.Deserialize(&records); err != nil {
			return nil, brewerrors.Wrap(brewerrors.ErrCodeInternal,
				fmt.Sprintf("failed to decode embedded %s dataset", name), err)
		}
	} else {
		slog.Debug("loading dataset override", "dataset", name, "path", path)
		loaded, err := serializer.FromFileWithContext[[]T](ctx, path)
		if err != nil {
			return nil, brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidInput,
				fmt.Sprintf("failed to load %s dataset", name), err,
				map[string]any{"dataset": name, "path": path})
		}
		records = *loaded
	}

	if len(records) == 0 {
		return nil, brewerrors.NewWithContext(brewerrors.ErrCodeInvalidInput,
			fmt.Sprintf("%s dataset has no records", name),
			map[string]any{"dataset": name, "source": source})
	}

	for i := range records {
		if n, ok := any(&records[i]).(interface{ normalize() }); ok {
			n.normalize()
		}
		if err := validate.Struct(records[i]); err != nil {
			return nil, brewerrors.WrapWithContext(brewerrors.ErrCodeInvalidInput,
				fmt.Sprintf("invalid record in %s dataset", name), err,
				map[string]any{"dataset": name, "source": source, "index": i})
		}
	}

	return records, nil
}

// Styles returns a copy of all beer styles in dataset order.
func (c *Catalog) Styles() []BeerStyle {
	return slices.Clone(c.styles)
}

// Hops returns a copy of all hops in dataset order.
func (c *Catalog) Hops() []Hop {
	return cloneHops(c.hops)
}

// Yeasts returns a copy of all yeasts in dataset order.
func (c *Catalog) Yeasts() []Yeast {
	return cloneYeasts(c.yeasts)
}

// Calories returns a copy of the ABV to calories table, ascending by ABV.
func (c *Catalog) Calories() []ABVCalories {
	return slices.Clone(c.calories)
}

// FindStyles returns the styles matching criteria.
func (c *Catalog) FindStyles(criteria StyleCriteria) []BeerStyle {
	return Filter(c.styles, criteria.Matches)
}

// FindHops returns the hops matching criteria.
func (c *Catalog) FindHops(criteria HopCriteria) []Hop {
	return cloneHops(Filter(c.hops, criteria.Matches))
}

// FindYeasts returns the yeasts matching criteria.
func (c *Catalog) FindYeasts(criteria YeastCriteria) []Yeast {
	return cloneYeasts(Filter(c.yeasts, criteria.Matches))
}

// CaloriesFor returns the first breakpoint that applies to abv. It
// reports false when abv is beyond the end of the table.
func (c *Catalog) CaloriesFor(abv float64) (ABVCalories, bool) {
	criteria := CaloriesCriteria{ABV: &abv}
	for _, r := range c.calories {
		if criteria.Matches(r) {
			return r, true
		}
	}
	return ABVCalories{}, false
}

func cloneHops(in []Hop) []Hop {
	out := make([]Hop, len(in))
	for i, h := range in {
		out[i] = h.clone()
	}
	return out
}

func cloneYeasts(in []Yeast) []Yeast {
	out := make([]Yeast, len(in))
	for i, y := range in {
		out[i] = y.clone()
	}
	return out
}
