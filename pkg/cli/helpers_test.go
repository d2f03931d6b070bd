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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/mchmarny/brewkit/pkg/serializer"
)

// runWith runs a bare command with flags and hands the parsed command to fn.
func runWith(t *testing.T, flags []cli.Flag, args []string, fn func(*cli.Command)) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(_ context.Context, c *cli.Command) error {
			fn(c)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{"yaml", serializer.FormatYAML, false},
		{"json", serializer.FormatJSON, false},
		{"table", serializer.FormatTable, false},
		{"JSON", serializer.FormatJSON, false},
		{" Yaml ", serializer.FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			flags := []cli.Flag{&cli.StringFlag{Name: "format", Value: tt.format}}
			runWith(t, flags, nil, func(c *cli.Command) {
				got, err := parseOutputFormat(c)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestQueryFromFlags(t *testing.T) {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "alpha-acid"},
		&cli.StringFlag{Name: "country", Value: "ignored default"},
	}
	args := []string{"--name", "cascade", "--alpha-acid", "10"}

	runWith(t, flags, args, func(c *cli.Command) {
		got := queryFromFlags(c, map[string]string{
			"name":       "name",
			"alpha-acid": "alpha_acid",
			"country":    "country",
		})
		assert.Equal(t, url.Values{"name": {"cascade"}, "alpha_acid": {"10"}}, got)
	})
}

func TestOptionalFloat(t *testing.T) {
	flags := []cli.Flag{
		&cli.FloatFlag{Name: "abv"},
		&cli.FloatFlag{Name: "fg", Value: 1.010},
	}

	runWith(t, flags, []string{"--abv", "0"}, func(c *cli.Command) {
		abv := optionalFloat(c, "abv")
		require.NotNil(t, abv)
		assert.Zero(t, *abv)
		assert.Nil(t, optionalFloat(c, "fg"), "defaults are not explicit values")
	})
}
