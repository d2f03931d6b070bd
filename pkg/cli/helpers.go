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
	"net/url"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/brewkit/pkg/catalog"
	"github.com/mchmarny/brewkit/pkg/header"
	"github.com/mchmarny/brewkit/pkg/serializer"
)

const (
	stylesFileFlag = "styles-file"
	hopsFileFlag   = "hops-file"
	yeastsFileFlag = "yeasts-file"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat returns the --format value or an error when it is not
// a supported format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %s",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeDocument wraps spec in a document of the given kind and writes it to
// --output, or to the root command writer when no output path is set.
func writeDocument(ctx context.Context, cmd *cli.Command, kind header.Kind, calculator string, spec any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	doc := header.NewDocument(kind, version, calculator, spec)

	path := strings.TrimSpace(cmd.String("output"))
	if path == "" {
		return serializer.NewWriter(outFormat, cmd.Root().Writer).Serialize(ctx, doc)
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, path)
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, doc)
}

// loadCatalog loads the reference datasets, honoring the dataset file flags.
func loadCatalog(ctx context.Context, cmd *cli.Command) (*catalog.Catalog, error) {
	cat, err := catalog.Load(ctx,
		catalog.WithStylesPath(cmd.String(stylesFileFlag)),
		catalog.WithHopsPath(cmd.String(hopsFileFlag)),
		catalog.WithYeastsPath(cmd.String(yeastsFileFlag)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return cat, nil
}

// queryFromFlags maps the set flags to query parameters, keyed flag name
// to parameter name, so searches parse criteria the same way the API does.
func queryFromFlags(cmd *cli.Command, params map[string]string) url.Values {
	values := url.Values{}
	for flag, param := range params {
		if cmd.IsSet(flag) {
			values.Set(param, cmd.String(flag))
		}
	}
	return values
}

// optionalFloat returns nil when the flag was not set.
func optionalFloat(cmd *cli.Command, name string) *float64 {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Float(name)
	return &v
}
